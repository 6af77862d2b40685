package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"superrats/internal/ga"
)

var (
	styleText     = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleTitle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleKeys     = tcell.StyleDefault.Foreground(tcell.ColorSteelBlue)
	styleAvg      = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleMax      = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleGoal     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBar      = tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown)
	styleCongrats = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true).Reverse(true)
)

const (
	title    = "SuperRats Genetic Algorithm Simulation"
	keysHelp = "[p] pause/resume  [+/-] speed  [r] reset  [n] next generation  [q] quit"
	congrats = " GOAL ACHIEVED! SUPER RAT CREATED! "
	buckets  = 10
)

// Display handles terminal rendering
type Display struct {
	screen tcell.Screen
}

// NewDisplay creates a new display
func NewDisplay(screen tcell.Screen) *Display {
	return &Display{screen: screen}
}

// Render draws the run state: header, weight histogram and history graph
func (d *Display) Render(s ga.Snapshot, cfg ga.Config, speed float64) {
	d.screen.Clear()
	width, height := d.screen.Size()

	drawText(d.screen, (width-len(title))/2, 0, styleTitle, title)
	drawText(d.screen, 1, 1, styleKeys, keysHelp)

	info := fmt.Sprintf("Generation: %d | Rats: %d | Avg Weight: %.0fg | Max Weight: %dg | Goal: %.0fg",
		s.Generation, len(s.Population), s.Mean, s.Max, cfg.Goal)
	drawText(d.screen, 1, 3, styleText, info)

	status := fmt.Sprintf("Mutation: %.1f%% | Litter Size: %d | Years: %.1f | Speed: %.1fx",
		cfg.MutationProbability*100, cfg.LitterSize, s.Years, speed)
	if s.Paused {
		status += " | PAUSED"
	}
	drawText(d.screen, 1, 4, styleText, status)

	barWidth := width - 14
	if barWidth > 50 {
		barWidth = 50
	}
	progress := float64(s.Max) / cfg.Goal
	drawText(d.screen, 1, 5, styleGoal, progressBar(barWidth, progress))
	drawText(d.screen, barWidth+4, 5, styleText, fmt.Sprintf("%3.0f%%", 100*clamp01(progress)))

	graphTop := 8 + buckets + 1
	d.renderHistogram(s.Population, 7, width)
	if height-graphTop >= 5 {
		d.renderGraph(s.History, cfg.Goal, graphTop, width, height-graphTop)
	}

	if s.GoalReached {
		drawText(d.screen, (width-len(congrats))/2, height/2, styleCongrats, congrats)
	}
	d.screen.Show()
}

func (d *Display) renderHistogram(pop ga.Population, top, width int) {
	counts, low, step := histogram(pop, buckets)
	drawText(d.screen, 1, top, styleText, "Weight distribution")
	most := 0
	for _, c := range counts {
		if c > most {
			most = c
		}
	}
	barMax := width - 26
	for i, c := range counts {
		label := fmt.Sprintf("%9dg %4d ", low+i*step, c)
		drawText(d.screen, 1, top+1+i, styleText, label)
		n := 0
		if most > 0 && barMax > 0 {
			n = c * barMax / most
		}
		drawText(d.screen, 1+len(label), top+1+i, styleBar, strings.Repeat("█", n))
	}
}

func (d *Display) renderGraph(h ga.History, goal float64, top, width, height int) {
	plotW := width - 2
	plotH := height - 2
	drawText(d.screen, 1, top, styleAvg, "Avg Weight")
	drawText(d.screen, 13, top, styleMax, "Max Weight")
	drawText(d.screen, 25, top, styleGoal, fmt.Sprintf("Goal: %.0fg", goal))
	if h.Len() < 2 || plotW < 2 || plotH < 2 {
		return
	}

	ceiling := goal
	for i := range h.Mean {
		if h.Mean[i] > ceiling {
			ceiling = h.Mean[i]
		}
		if h.Max[i] > ceiling {
			ceiling = h.Max[i]
		}
	}
	bottom := top + 1 + plotH

	goalY := bottom - scaleRow(goal, ceiling, plotH)
	for x := 0; x < plotW; x++ {
		d.screen.SetContent(1+x, goalY, '─', nil, styleGoal)
	}
	for x, v := range resample(h.Max, plotW) {
		d.screen.SetContent(1+x, bottom-scaleRow(v, ceiling, plotH), '+', nil, styleMax)
	}
	for x, v := range resample(h.Mean, plotW) {
		d.screen.SetContent(1+x, bottom-scaleRow(v, ceiling, plotH), '•', nil, styleAvg)
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// progressBar renders ratio (clamped to [0,1]) as a bracketed bar of the given inner width.
func progressBar(width int, ratio float64) string {
	if width < 0 {
		width = 0
	}
	filled := int(clamp01(ratio) * float64(width))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// histogram counts weights into n equal buckets starting at low.
func histogram(pop ga.Population, n int) (counts []int, low, step int) {
	counts = make([]int, n)
	min, err := pop.Min()
	if err != nil {
		return counts, 0, 0
	}
	max, _ := pop.Max()
	step = (max-min)/n + 1
	for _, w := range pop {
		counts[(w-min)/step]++
	}
	return counts, min, step
}

// resample picks width evenly spaced points from series.
func resample(series []float64, width int) []float64 {
	if len(series) == 0 || width <= 0 {
		return nil
	}
	if len(series) <= width {
		return series
	}
	out := make([]float64, width)
	for x := range out {
		if width == 1 {
			out[x] = series[len(series)-1]
			continue
		}
		out[x] = series[x*(len(series)-1)/(width-1)]
	}
	return out
}

// scaleRow maps v in [0, ceiling] onto [0, height-1] rows above the baseline.
func scaleRow(v, ceiling float64, height int) int {
	if ceiling <= 0 || height <= 1 {
		return 0
	}
	row := int(clamp01(v/ceiling) * float64(height-1))
	return row
}
