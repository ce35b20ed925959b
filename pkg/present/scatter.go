package present

import (
	"fmt"
	"io"

	"github.com/0x0FACED/go-dbscan/pkg/dbscan"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// цвета кластеров, берутся по кругу
var Palette = []string{"blue", "green", "red", "cyan", "magenta", "yellow"}

const (
	NoiseSeries = "Шум"
	noiseColor  = "lightgray"
)

func clusterSeries(i int) string {
	return fmt.Sprintf("Кластер %d", i+1)
}

func prepareScatter(scatter *charts.Scatter, title string) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                title,
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "X",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Y",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

func scatterData(points []dbscan.Point, symbol string, size int) []opts.ScatterData {
	data := make([]opts.ScatterData, 0, len(points))
	for _, p := range points {
		data = append(data, opts.ScatterData{
			Value:      []float64{p.X, p.Y},
			Symbol:     symbol,
			SymbolSize: size,
		})
	}
	return data
}

// Scatter строит точечный график: по серии на кластер, цвет по номеру кластера
// по модулю размера палитры, шум последней серией мелким серым ромбом.
func Scatter(res *dbscan.Result, title string) *charts.Scatter {
	scatter := charts.NewScatter()

	prepareScatter(scatter, title)

	for i := range res.Clusters {
		// SetSeriesOptions перекрасил бы все серии, поэтому цвет задаем при добавлении
		scatter.AddSeries(clusterSeries(i), scatterData(res.ClusterPoints(i), "circle", 8),
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: Palette[i%len(Palette)],
			}),
		)
	}

	scatter.AddSeries(NoiseSeries, scatterData(res.NoisePoints(), "diamond", 3),
		charts.WithItemStyleOpts(opts.ItemStyle{
			Color: noiseColor,
		}),
	)

	return scatter
}

// ScatterPresenter рисует Scatter с заголовком title в HTML.
func ScatterPresenter(title string) Presenter {
	return func(w io.Writer, res *dbscan.Result) error {
		return Scatter(res, title).Render(w)
	}
}
