package commands

import (
	"fmt"

	"github.com/callcenter/cancel-advisor/pkg/won"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var parsePriceCmd = &cobra.Command{
	Use:   "parse-price <text>...",
	Short: "Parse price labels as shown on product pages",
	Long: `Parse price labels the way catalog files are read.

Example:
  cancel-advisor parse-price "월 89,000원" 무료 "최대 22,250원/월"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, text := range args {
			amount, ok := won.ParsePriceStatus(text)
			if !ok {
				log.WithField("text", text).Warn("no price found, treating as 0")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\n", text, amount, won.FormatPrice(amount))
		}
	},
}
