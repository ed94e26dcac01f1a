package main

import (
	"archive/zip"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dadosjusbr/status"
	"go.uber.org/zap"
)

const (
	exitInvalidConfig = 4
	exitInvalidInput  = 5
)

func main() {
	var arg string
	if len(os.Args) > 1 {
		arg = os.Args[1]
	}
	cfg, err := loadConfig(arg)
	if err != nil {
		status.ExitFromError(status.NewError(exitInvalidConfig, err))
	}

	logger, err := newLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer logger.Sync()

	table, err := LoadTable(cfg.InputFile, LoadOptions{
		TextColumns: []string{colAllegationNature, colPayerRelationship},
	})
	if err != nil {
		logger.Error("Failed to load dataset", zap.String("path", cfg.InputFile), zap.Error(err))
		fail(logger, exitInvalidInput, err)
	}
	logger.Info("Loaded dataset",
		zap.String("path", cfg.InputFile),
		zap.Int("rows", table.Len()),
		zap.Int("columns", len(table.Header)))

	analysis, err := Analyze(table, Filter{AllegationCode: cfg.AllegationCode, MinYear: cfg.MinYear}, logger)
	if err != nil {
		logger.Error("Failed to analyze dataset", zap.Error(err))
		fail(logger, exitInvalidInput, err)
	}

	res, err := writeOutputs(analysis, cfg, logger)
	if err != nil {
		logger.Error("Failed to write report", zap.Error(err))
		fail(logger, status.SystemError, err)
	}

	logger.Info("Report generated",
		zap.Int("loaded", res.Loaded),
		zap.Int("filtered", res.Filtered),
		zap.Int("analyzed", res.Analyzed),
		zap.Int("bad_amounts", res.BadAmounts),
		zap.String("report", res.ReportFile),
		zap.String("package", res.PackageFile))
}

var exitFromError = status.ExitFromError

// fail flushes the logger and exits, since deferred calls do not run on os.Exit.
func fail(logger *zap.Logger, code status.Code, err error) {
	logger.Sync()
	exitFromError(status.NewError(code, err))
}

// writeOutputs renders the report, exports the aggregates and bundles
// everything into a zip inside cfg.OutputFolder.
func writeOutputs(a *Analysis, cfg Config, logger *zap.Logger) (RunResult, error) {
	res := a.Result
	if err := os.MkdirAll(cfg.OutputFolder, 0o755); err != nil {
		return res, fmt.Errorf("error creating output folder (%s): %w", cfg.OutputFolder, err)
	}

	res.ReportFile = filepath.Join(cfg.OutputFolder, "report.html")
	if err := renderFile(&a.Document, res.ReportFile); err != nil {
		return res, err
	}
	res.Artifacts = append(res.Artifacts, res.ReportFile)

	for _, s := range a.Document.Sections {
		if s.Table == "" {
			continue
		}
		path := filepath.Join(cfg.OutputFolder, s.Table+".csv")
		if err := toCSVFile(&s.Groups, path); err != nil {
			return res, fmt.Errorf("error dumping %s into file (%s): %w", s.Table, path, err)
		}
		res.Artifacts = append(res.Artifacts, path)
	}

	if cfg.WriteXLSX {
		path := filepath.Join(cfg.OutputFolder, "summary.xlsx")
		if err := writeWorkbook(a.Document.Sections, path); err != nil {
			return res, err
		}
		res.Artifacts = append(res.Artifacts, path)
	}

	if cfg.WriteParquet {
		path := filepath.Join(cfg.OutputFolder, "reports.parquet")
		if err := writeParquet(a.Reports, path); err != nil {
			return res, err
		}
		res.Artifacts = append(res.Artifacts, path)
	}
	logger.Debug("Artifacts written", zap.Strings("files", res.Artifacts))

	res.PackageFile = filepath.Join(cfg.OutputFolder, "npdb-report.zip")
	if err := zipFiles(res.PackageFile, cfg.OutputFolder, res.Artifacts); err != nil {
		return res, fmt.Errorf("error zipping report files (%s): %w", res.PackageFile, err)
	}
	if !cfg.KeepArtifacts {
		for _, f := range res.Artifacts {
			if err := os.Remove(f); err != nil {
				return res, fmt.Errorf("error removing artifact (%s): %w", f, err)
			}
		}
	}
	return res, nil
}

func renderFile(d *Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating report file (%s): %w", path, err)
	}
	defer f.Close()
	return d.Render(f)
}

func zipFiles(filename string, basePath string, files []string) error {
	newfile, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer newfile.Close()
	zipWriter := zip.NewWriter(newfile)
	defer zipWriter.Close()
	for _, file := range files {
		if err := addToZip(zipWriter, basePath, file); err != nil {
			return err
		}
	}
	return nil
}

func addToZip(zipWriter *zip.Writer, basePath, file string) error {
	zipfile, err := os.Open(file)
	if err != nil {
		return err
	}
	defer zipfile.Close()
	info, err := zipfile.Stat()
	if err != nil {
		return err
	}
	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}

	// Deflate is the compression method.
	header.Method = zip.Deflate
	t := strings.TrimPrefix(strings.TrimPrefix(filepath.ToSlash(file), filepath.ToSlash(filepath.Clean(basePath))), "/")
	if filepath.Dir(t) != "." {
		header.Name = t
	}
	writer, err := zipWriter.CreateHeader(header)
	if err != nil {
		return err
	}
	_, err = io.Copy(writer, zipfile)
	return err
}
