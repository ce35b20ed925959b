package present

import (
	"fmt"
	"io"
	"strings"

	"github.com/0x0FACED/go-dbscan/pkg/dbscan"
)

// Presenter выводит результат кластеризации, ничего в нем не меняя.
type Presenter func(w io.Writer, res *dbscan.Result) error

// WriteText печатает кластеры (нумерация с 1), затем шум и итоговое число кластеров.
func WriteText(w io.Writer, res *dbscan.Result) error {
	var b strings.Builder

	for i := range res.Clusters {
		header := fmt.Sprintf("Cluster %d", i+1)
		b.WriteString(header + "\n" + strings.Repeat("-", len(header)) + "\n")
		writePoints(&b, res.ClusterPoints(i))
	}

	if len(res.Noise) > 0 {
		b.WriteString("Noises\n------\n")
		writePoints(&b, res.NoisePoints())
	}

	fmt.Fprintf(&b, "Numbers of clusters: %d\n", len(res.Clusters))

	_, err := io.WriteString(w, b.String())
	return err
}

func writePoints(b *strings.Builder, points []dbscan.Point) {
	for _, p := range points {
		b.WriteString(p.String())
		b.WriteString(", ")
	}
	b.WriteString("\n")
}
