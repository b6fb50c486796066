// Package viz renders the four summary charts from the finished feature
// table. Each chart is a thin declarative consumer of the table schema;
// all numbers are computed upstream in pkg/features.
package viz

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/jwang467-hub/IJC445-coursework/pkg/corpus"
	"github.com/jwang467-hub/IJC445-coursework/pkg/features"
)

const (
	chartWidth  = 7 * vg.Inch
	chartHeight = 5 * vg.Inch
)

// plotDecades are the buckets drawn in decade-grouped charts. Unknown
// stays out: it has no position on a decade axis.
var plotDecades = []corpus.Decade{corpus.Decade2000s, corpus.Decade2010s, corpus.Decade2020s}

// TrendChart draws mean word count by year as a line and saves it as a
// PNG at path.
func TrendChart(points []features.TrendPoint, path string) error {
	p := plot.New()
	p.Title.Text = "Average lyric length by year"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Mean word count"

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = float64(pt.Year)
		xys[i].Y = pt.MeanWordCount
	}

	// A zero-point line leaves the axes with an unbounded data range.
	if len(xys) > 0 {
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("viz: trend line: %w", err)
		}
		line.Color = plotutil.Color(0)
		p.Add(line)
	}
	p.Add(plotter.NewGrid())

	return save(p, path)
}

// DecadeBoxChart draws one sentiment-score box per decade bucket.
func DecadeBoxChart(feats []features.SongFeature, path string) error {
	p := plot.New()
	p.Title.Text = "Sentiment score by decade"
	p.Y.Label.Text = "Sentiment score"

	byDecade := make(map[corpus.Decade]plotter.Values)
	for _, f := range feats {
		byDecade[f.Decade] = append(byDecade[f.Decade], float64(f.SentimentScore))
	}

	var names []string
	pos := 0.0
	for _, d := range plotDecades {
		values, ok := byDecade[d]
		if !ok {
			continue
		}
		box, err := plotter.NewBoxPlot(vg.Points(30), pos, values)
		if err != nil {
			return fmt.Errorf("viz: box for %s: %w", d, err)
		}
		p.Add(box)
		names = append(names, d.String())
		pos++
	}
	// NominalX panics on an empty name list; a corpus can legitimately
	// have no known decades.
	if len(names) > 0 {
		p.NominalX(names...)
	}

	return save(p, path)
}

// ScatterChart draws word count against sentiment score, one colored
// scatter per decade, with a least-squares fit over all plotted songs.
func ScatterChart(feats []features.SongFeature, path string) error {
	p := plot.New()
	p.Title.Text = "Lyric length vs sentiment"
	p.X.Label.Text = "Word count"
	p.Y.Label.Text = "Sentiment score"

	var allX, allY []float64
	for i, d := range plotDecades {
		var xys plotter.XYs
		for _, f := range feats {
			if f.Decade != d {
				continue
			}
			xys = append(xys, plotter.XY{X: float64(f.WordCount), Y: float64(f.SentimentScore)})
			allX = append(allX, float64(f.WordCount))
			allY = append(allY, float64(f.SentimentScore))
		}
		if len(xys) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return fmt.Errorf("viz: scatter for %s: %w", d, err)
		}
		sc.GlyphStyle.Color = plotutil.Color(i)
		sc.GlyphStyle.Radius = vg.Points(2)
		p.Add(sc)
		p.Legend.Add(d.String(), sc)
	}

	// Fit line needs spread on both axes.
	if len(allX) >= 2 {
		alpha, beta := stat.LinearRegression(allX, allY, nil, false)
		minX, maxX := allX[0], allX[0]
		for _, x := range allX {
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
		}
		fit, err := plotter.NewLine(plotter.XYs{
			{X: minX, Y: alpha + beta*minX},
			{X: maxX, Y: alpha + beta*maxX},
		})
		if err != nil {
			return fmt.Errorf("viz: fit line: %w", err)
		}
		fit.Color = plotutil.Color(len(plotDecades))
		p.Add(fit)
		p.Legend.Add("fit", fit)
	}

	p.Legend.Top = true
	return save(p, path)
}

// PCAChart draws the 2-component projection, labeling each axis with
// its share of explained variance.
func PCAChart(proj features.Projection, path string) error {
	p := plot.New()
	p.Title.Text = "PCA of song features"
	p.X.Label.Text = fmt.Sprintf("PC1 (%.1f%% variance)", proj.VarExplained[0])
	p.Y.Label.Text = fmt.Sprintf("PC2 (%.1f%% variance)", proj.VarExplained[1])

	xys := make(plotter.XYs, len(proj.X))
	for i := range proj.X {
		xys[i].X = proj.X[i]
		xys[i].Y = proj.Y[i]
	}
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("viz: pca scatter: %w", err)
	}
	sc.GlyphStyle.Color = plotutil.Color(0)
	sc.GlyphStyle.Radius = vg.Points(2)
	p.Add(sc, plotter.NewGrid())

	return save(p, path)
}

// RenderCharts writes the three charts that only need the feature
// table into dir, creating it if needed.
func RenderCharts(dir string, feats []features.SongFeature, trend []features.TrendPoint) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("viz: create chart dir: %w", err)
	}
	if err := TrendChart(trend, filepath.Join(dir, "trend.png")); err != nil {
		return err
	}
	if err := DecadeBoxChart(feats, filepath.Join(dir, "decade_box.png")); err != nil {
		return err
	}
	return ScatterChart(feats, filepath.Join(dir, "scatter.png"))
}

// RenderAll writes all four charts into dir, creating it if needed.
func RenderAll(dir string, feats []features.SongFeature, trend []features.TrendPoint, proj features.Projection) error {
	if err := RenderCharts(dir, feats, trend); err != nil {
		return err
	}
	return PCAChart(proj, filepath.Join(dir, "pca.png"))
}

func save(p *plot.Plot, path string) error {
	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return fmt.Errorf("viz: save %q: %w", path, err)
	}
	return nil
}
