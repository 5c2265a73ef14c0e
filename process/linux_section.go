//go:build linux

package process

import (
	"bufio"
	"debug/elf"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unsafe"
)

// LinuxResolver resolves module sections for the current process by
// reading /proc/self/maps for the module's live mapping base and
// debug/elf for its section table. This supplements the original's
// Windows-only module collaborator with a second real platform.
type LinuxResolver struct{}

// NewLinuxResolver returns a resolver scoped to the calling process.
func NewLinuxResolver() *LinuxResolver {
	return &LinuxResolver{}
}

// CurrentProcess returns the calling process's own main executable
// module, identified by its first mapped segment in /proc/self/maps.
func CurrentProcess() (Module, error) {
	path, base, _, err := firstMapping("")
	if err != nil {
		return 0, err
	}
	_ = path
	return Module(base), nil
}

// Section implements SectionResolver. mod is matched against the base
// address of mappings backed by the same file as the mapping containing
// mod itself, so a module loaded at any ASLR base resolves correctly.
func (r *LinuxResolver) Section(mod Module, name string) (begin, end unsafe.Pointer, err error) {
	path, base, err := mappingFor(mod)
	if err != nil {
		return nil, nil, err
	}

	f, err := elf.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("process: open %s: %w", path, err)
	}
	defer f.Close()

	for _, sec := range f.Sections {
		if sec.Name != name {
			continue
		}
		if sec.Flags&elf.SHF_ALLOC == 0 || sec.Size == 0 {
			return nil, nil, nil
		}
		runtime := base + uintptr(sec.Addr)
		begin = unsafe.Pointer(runtime)                     //nolint:govet // module section, valid for process lifetime
		end = unsafe.Pointer(runtime + uintptr(sec.Size)) //nolint:govet
		return begin, end, nil
	}
	return nil, nil, nil
}

// mappingFor finds the backing file and load base of the mapping
// containing addr, by scanning /proc/self/maps.
func mappingFor(addr Module) (path string, base uintptr, err error) {
	f, err := os.Open("/proc/self/maps")
	if err != nil {
		return "", 0, fmt.Errorf("process: open /proc/self/maps: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lo, hi, mapPath, ok := parseMapLine(sc.Text())
		if !ok || mapPath == "" {
			continue
		}
		if uintptr(addr) >= lo && uintptr(addr) < hi {
			return mapPath, firstBaseForPath(mapPath), nil
		}
	}
	return "", 0, fmt.Errorf("process: no mapping contains address %s", addr)
}

// firstMapping returns the first executable-backed mapping in
// /proc/self/maps, or the first mapping whose path matches want if want
// is non-empty.
func firstMapping(want string) (path string, base uintptr, size uintptr, err error) {
	f, err := os.Open("/proc/self/maps")
	if err != nil {
		return "", 0, 0, fmt.Errorf("process: open /proc/self/maps: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lo, hi, mapPath, ok := parseMapLine(sc.Text())
		if !ok || mapPath == "" || strings.HasPrefix(mapPath, "[") {
			continue
		}
		if want == "" || mapPath == want {
			return mapPath, lo, hi - lo, nil
		}
	}
	return "", 0, 0, fmt.Errorf("process: no mapping found")
}

// firstBaseForPath returns the lowest mapped address backed by path,
// which is that module's load base regardless of which section's
// mapping addr originally fell within.
func firstBaseForPath(path string) uintptr {
	f, err := os.Open("/proc/self/maps")
	if err != nil {
		return 0
	}
	defer f.Close()

	var lowest uintptr = ^uintptr(0)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lo, _, mapPath, ok := parseMapLine(sc.Text())
		if !ok || mapPath != path {
			continue
		}
		if lo < lowest {
			lowest = lo
		}
	}
	if lowest == ^uintptr(0) {
		return 0
	}
	return lowest
}

// parseMapLine parses one /proc/pid/maps line into its address range and
// backing file path, if any.
func parseMapLine(line string) (lo, hi uintptr, path string, ok bool) {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return 0, 0, "", false
	}
	rng := strings.SplitN(fields[0], "-", 2)
	if len(rng) != 2 {
		return 0, 0, "", false
	}
	loVal, err1 := strconv.ParseUint(rng[0], 16, 64)
	hiVal, err2 := strconv.ParseUint(rng[1], 16, 64)
	if err1 != nil || err2 != nil {
		return 0, 0, "", false
	}
	if len(fields) >= 6 {
		path = fields[5]
	}
	return uintptr(loVal), uintptr(hiVal), path, true
}
