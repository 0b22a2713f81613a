package main

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
)

type genCmd struct {
	Out  string `help:"Output file path." default:"sample_10k.csv"`
	Rows int    `help:"Number of rows to generate." default:"10000"`
	Cols int    `help:"Number of columns per row." default:"5"`
	Seed int64  `help:"Random seed, fixed for reproducible data." default:"42"`
}

const fieldLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Run writes a synthetic data file through the reference encoding/csv
// writer. Using the reference implementation here keeps the generator
// independent of the codec under test: whatever it emits must parse
// correctly with customcsv.Reader.
func (c *genCmd) Run() error {
	rng := rand.New(rand.NewSource(c.Seed))

	f, err := os.Create(c.Out)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	row := make([]string, c.Cols)
	for i := 0; i < c.Rows; i++ {
		for j := range row {
			row[j] = randomField(rng)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	slog.Info("generated data file", "path", c.Out, "rows", c.Rows, "cols", c.Cols, "seed", c.Seed)
	fmt.Printf("Generated %s with %d rows and %d columns.\n", c.Out, c.Rows, c.Cols)
	return nil
}

// randomField picks uniformly among five field kinds: plain, with an
// embedded comma, with an embedded quote, with an embedded newline, empty.
func randomField(rng *rand.Rand) string {
	base := make([]byte, 5)
	for i := range base {
		base[i] = fieldLetters[rng.Intn(len(fieldLetters))]
	}
	s := string(base)

	switch rng.Intn(5) {
	case 0:
		return s
	case 1:
		return s + "," + s
	case 2:
		return s + "\"" + s
	case 3:
		return s + "\n" + s
	default:
		return ""
	}
}
