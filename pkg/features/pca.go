package features

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// pcaColumns are the numeric feature columns entering the decomposition.
var pcaColumns = []string{
	"word_count", "sentiment_score", "positive_ratio", "negative_ratio", "unique_ratio",
}

// Projection is the 2-component principal-component view of the feature
// table. X and Y hold the component coordinates of each row in table
// order; VarExplained holds the percentage of total variance captured
// by each kept component.
type Projection struct {
	X, Y         []float64
	VarExplained [2]float64
}

// numericRow extracts the PCA input columns of a feature row.
func numericRow(f SongFeature) []float64 {
	return []float64{
		float64(f.WordCount),
		float64(f.SentimentScore),
		f.PositiveRatio,
		f.NegativeRatio,
		f.UniqueRatio,
	}
}

// PCA centers and scales the five numeric feature columns, then projects
// them onto the first two principal components. Variance-explained
// percentages are each component's eigenvalue over the sum of all
// eigenvalues. At least two rows are required.
func PCA(feats []SongFeature) (Projection, error) {
	n := len(feats)
	if n < 2 {
		return Projection{}, fmt.Errorf("features: pca needs at least 2 rows, have %d", n)
	}
	cols := len(pcaColumns)

	data := mat.NewDense(n, cols, nil)
	for i, f := range feats {
		data.SetRow(i, numericRow(f))
	}

	// Standardize each column. A constant column has zero spread and is
	// only centered, which leaves it with zero variance either way.
	col := make([]float64, n)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, data)
		mean, std := stat.MeanStdDev(col, nil)
		for i := range col {
			col[i] -= mean
			if std > 0 {
				col[i] /= std
			}
		}
		data.SetCol(j, col)
	}

	var pc stat.PC
	if ok := pc.PrincipalComponents(data, nil); !ok {
		return Projection{}, fmt.Errorf("features: pca decomposition failed")
	}

	vars := pc.VarsTo(nil)
	var total float64
	for _, v := range vars {
		total += v
	}

	var vectors mat.Dense
	pc.VectorsTo(&vectors)

	var proj mat.Dense
	proj.Mul(data, vectors.Slice(0, cols, 0, 2))

	out := Projection{X: make([]float64, n), Y: make([]float64, n)}
	for i := 0; i < n; i++ {
		out.X[i] = proj.At(i, 0)
		out.Y[i] = proj.At(i, 1)
	}
	if total > 0 {
		out.VarExplained[0] = vars[0] / total * 100
		out.VarExplained[1] = vars[1] / total * 100
	}
	return out, nil
}
