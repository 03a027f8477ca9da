package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	ml_model "github.com/DRSN-tech/fitplan-backend/internal/infrastructure/ml-model"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// render печатает v в выбранном формате. YAML строится из JSON-представления,
// чтобы ключи совпадали с API.
func render(w io.Writer, format string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	switch format {
	case formatJSON:
		_, err = fmt.Fprintln(w, string(data))
		return err
	case formatYAML:
		var generic any
		if err := json.Unmarshal(data, &generic); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(generic); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want json or yaml)", format)
	}
}

func loadModel(ctx context.Context) (*ml_model.ClusterModel, error) {
	return ml_model.Load(ctx, ml_model.NewFileSource(""), modelDataPath, clusterInfoPath)
}

// readInput читает JSON-документ из файла или stdin ("-").
func readInput(path string, stdin io.Reader, dst any) error {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dst)
}
