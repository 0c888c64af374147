package report

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
)

var csvHeaderColumns = []string{"index", "project", "readme_url", "size_bytes"}

// WriteCSV renders the rows as CSV with a header and one-based index column.
func WriteCSV(destination io.Writer, rows []Row) error {
	csvWriter := csv.NewWriter(destination)
	if headerError := csvWriter.Write(csvHeaderColumns); headerError != nil {
		return headerError
	}
	for rowIndex, row := range rows {
		record := []string{
			strconv.Itoa(rowIndex + 1),
			row.Project,
			row.Link,
			strconv.FormatInt(row.SizeBytes, 10),
		}
		if recordError := csvWriter.Write(record); recordError != nil {
			return recordError
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

// WriteCSVFile renders the rows into a CSV file at the output path.
func WriteCSVFile(outputPath string, rows []Row) error {
	outputFile, createError := os.Create(outputPath)
	if createError != nil {
		return WriteFailedError{Path: outputPath, Cause: createError}
	}
	renderError := WriteCSV(outputFile, rows)
	closeError := outputFile.Close()
	if renderError != nil {
		return WriteFailedError{Path: outputPath, Cause: renderError}
	}
	if closeError != nil {
		return WriteFailedError{Path: outputPath, Cause: closeError}
	}
	return nil
}
