package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	customcsv "github.com/saiyasaswi-685/custom-csv-parser"
)

type benchCmd struct {
	File    string `help:"Data file to benchmark against." default:"sample_10k.csv"`
	Repeats int    `help:"Number of timed passes per measurement." default:"5"`
}

func (c *benchCmd) Run() error {
	// Load the rows once with the reference implementation; both writers
	// are then timed emitting the same row set.
	rows, err := loadReference(c.File)
	if err != nil {
		return fmt.Errorf("unable to load %s: %w", c.File, err)
	}
	slog.Info("loaded data file", "path", c.File, "rows", len(rows))

	fmt.Println("=== Reader benchmarks ===")
	customRead, err := c.timeRepeats("CustomCsv reader", c.readPassCustom)
	if err != nil {
		return err
	}
	stdRead, err := c.timeRepeats("StdCsv reader", c.readPassReference)
	if err != nil {
		return err
	}

	fmt.Println("\n=== Writer benchmarks ===")
	customWrite, err := c.timeRepeats("CustomCsv writer", func() error {
		return writePassCustom(rows)
	})
	if err != nil {
		return err
	}
	stdWrite, err := c.timeRepeats("StdCsv writer", func() error {
		return writePassReference(rows)
	})
	if err != nil {
		return err
	}

	fmt.Println("\n=== Summary ===")
	fmt.Printf("Custom reader time: %.6f s\n", customRead.Seconds())
	fmt.Printf("Std    reader time: %.6f s\n", stdRead.Seconds())
	fmt.Printf("Custom writer time: %.6f s\n", customWrite.Seconds())
	fmt.Printf("Std    writer time: %.6f s\n", stdWrite.Seconds())
	return nil
}

// timeRepeats runs pass c.Repeats times and reports the average duration.
func (c *benchCmd) timeRepeats(label string, pass func() error) (time.Duration, error) {
	repeats := c.Repeats
	if repeats < 1 {
		repeats = 1
	}

	var total time.Duration
	for i := 0; i < repeats; i++ {
		start := time.Now()
		if err := pass(); err != nil {
			return 0, err
		}
		elapsed := time.Since(start)
		total += elapsed
		slog.Debug("pass complete", "label", label, "pass", i+1, "elapsed", elapsed)
	}

	avg := total / time.Duration(repeats)
	fmt.Printf("%s avg time over %d runs: %.6f seconds\n", label, repeats, avg.Seconds())
	return avg, nil
}

func loadReference(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

func (c *benchCmd) readPassCustom() error {
	f, err := os.Open(c.File)
	if err != nil {
		return err
	}
	defer f.Close()

	r := customcsv.NewReader(f)
	for {
		if _, err := r.Read(); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

func (c *benchCmd) readPassReference() error {
	f, err := os.Open(c.File)
	if err != nil {
		return err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	for {
		if _, err := r.Read(); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

func writePassCustom(rows [][]string) error {
	f, err := os.CreateTemp("", "csvbench-custom-*.csv")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())
	defer f.Close()

	w := customcsv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return w.Flush()
}

func writePassReference(rows [][]string) error {
	f, err := os.CreateTemp("", "csvbench-std-*.csv")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
