package main

import (
	"fmt"
	"io"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fernando-m-vale/superseller-ia-sub001/internal/usecases/evaluating"
	"github.com/fernando-m-vale/superseller-ia-sub001/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type evaluateOptions struct {
	now    string
	pretty bool
	clock  func() time.Time
}

func newEvaluateCmd() *cobra.Command {
	opts := &evaluateOptions{clock: time.Now}

	evaluateCmd := &cobra.Command{
		Use:   "evaluate <snapshot.json>",
		Short: "Calcula score, plano de ação, explicações, lacunas e hacks de uma fotografia",
		Long: `Lê uma fotografia JSON e imprime o resultado de todas as etapas do motor.

O instante de referência vem de --now, depois do campo now_utc da fotografia e,
por último, do relógio do sistema.

Exemplos:
  evaluator evaluate anuncio.json
  evaluator evaluate anuncio.json --now 2026-01-31T12:00:00Z --pretty`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(cmd.OutOrStdout(), args[0], opts)
		},
	}

	evaluateCmd.Flags().StringVar(&opts.now, "now", "", "instante de referência em RFC3339 ou AAAA-MM-DD")
	evaluateCmd.Flags().BoolVar(&opts.pretty, "pretty", false, "indenta o JSON de saída")

	return evaluateCmd
}

func runEvaluate(out io.Writer, path string, opts *evaluateOptions) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "erro ao ler a fotografia %s", path)
	}

	var snapshot evaluating.Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return errors.Wrapf(err, "fotografia inválida %s", path)
	}

	now, err := referenceInstant(opts, snapshot)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"listing_id": snapshot.Listing.ID,
		"now":        now.Format(time.RFC3339),
	}).Debug("evaluator: avaliando fotografia")

	report := evaluating.Evaluate(snapshot, now)

	encoded, err := json.Marshal(report)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar o relatório")
	}

	output := string(encoded)
	if opts.pretty {
		output = utils.PrettyJson(encoded)
	}

	_, err = fmt.Fprintln(out, output)
	return err
}

func referenceInstant(opts *evaluateOptions, snapshot evaluating.Snapshot) (time.Time, error) {
	if opts.now != "" {
		now, err := utils.ParseInstant(opts.now)
		if err != nil {
			return time.Time{}, errors.Wrapf(err, "valor inválido para --now: %s", opts.now)
		}
		return *now, nil
	}

	if snapshot.NowUTC != nil {
		return snapshot.NowUTC.UTC(), nil
	}

	return opts.clock().UTC(), nil
}
