package main

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

func toCSVFile(in interface{}, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating CSV file(%s):%q", path, err)
	}
	defer f.Close()

	csvWriter := csv.NewWriter(f)
	csvWriter.Comma = ';'
	csvWriter.UseCRLF = true

	return gocsv.MarshalCSV(in, gocsv.NewSafeCSVWriter(csvWriter))
}
