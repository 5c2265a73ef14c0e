package cmd

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/coregx/sigscan"
	"github.com/coregx/sigscan/hatparse"
)

func init() {
	findCmd.Flags().String("file", "", "path to a dumped module image to scan instead of a live process")
	findCmd.Flags().String("align", "x1", "match address alignment: x1 or x16")
	findCmd.Flags().Bool("x86_64", false, "hint the scanned bytes are x86-64 machine code")
	findCmd.Flags().Bool("all", false, "report every match, overlapping ones included, instead of just the first")
	findCmd.Flags().Int("limit", 0, "stop after this many matches (0 means unlimited, only with --all)")
}

var findCmd = &cobra.Command{
	Use:           "find <hex-pattern>",
	Short:         "Search a byte range for an AOB signature",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		alignFlag, _ := cmd.Flags().GetString("align")
		x8664, _ := cmd.Flags().GetBool("x86_64")
		all, _ := cmd.Flags().GetBool("all")
		limit, _ := cmd.Flags().GetInt("limit")

		if file == "" {
			return fmt.Errorf("find: --file is required (live --pid attachment is left to a future release)")
		}

		sig, err := hatparse.Parse(args[0])
		if err != nil {
			return fmt.Errorf("find: %w", err)
		}

		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("find: %w", err)
		}

		align := sigscan.X1
		if alignFlag == "x16" {
			align = sigscan.X16
		}
		hint := sigscan.HintNone
		if x8664 {
			hint |= sigscan.HintX86_64
		}

		log.WithFields(log.Fields{
			"file":  file,
			"bytes": humanize.Bytes(uint64(len(data))),
			"align": alignFlag,
		}).Debug("scanning")

		if !all {
			r := sigscan.Find(data, sig, align, hint)
			return reportOne(r)
		}

		count := 0
		sigscan.FindAllFunc(data, sig, align, hint, func(r sigscan.Result) bool {
			reportOne(r) //nolint:errcheck // best-effort per-match print, never fails
			count++
			return limit == 0 || count < limit
		})
		log.Infof("%d match(es)", count)
		return nil
	},
}

func reportOne(r sigscan.Result) error {
	pos, ok := r.Offset()
	if !ok {
		log.Warn("no match")
		return nil
	}
	fmt.Printf("0x%x\n", pos)
	return nil
}
