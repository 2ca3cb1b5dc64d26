package experiments

import (
	"github.com/logrusorgru/aurora"
	"github.com/schollz/progressbar/v3"
)

type bar progressbar.ProgressBar

func newBar(len int, description string) *bar {
	return (*bar)(progressbar.NewOptions(len,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        aurora.Green("█").String(),
			SaucerHead:    aurora.Green("█").String(),
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	))
}

func (b *bar) add(i int) {
	(*progressbar.ProgressBar)(b).Add(i)
}
