package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hejijunhao/lovetype/internal/refdata"
)

// healthReport keeps the /health key order.
type healthReport struct {
	Params    string `json:"params"`
	Centroids string `json:"centroids"`
	Mapping   string `json:"mapping"`
	Copy      string `json:"copy"`
}

func newHealthCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Report which reference datasets are present",
		Long:  `Health prints "ok" or "missing" per dataset and exits non-zero when a required dataset is missing.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := a.backend.Health(cmd.Context())
			if err != nil {
				return err
			}
			out, err := a.openOutput(cmd)
			if err != nil {
				return err
			}
			report := healthReport{
				Params:    st[refdata.DatasetParams],
				Centroids: st[refdata.DatasetCentroids],
				Mapping:   st[refdata.DatasetMapping],
				Copy:      st[refdata.DatasetCopy],
			}
			if err := errors.Join(out.Write(cmd.Context(), report), out.Close()); err != nil {
				return err
			}

			var missing []string
			for _, ds := range refdata.HealthDatasets() {
				if ds != refdata.DatasetCopy && st[ds] != "ok" {
					missing = append(missing, ds)
				}
			}
			if len(missing) > 0 {
				return fmt.Errorf("reference data missing: %s", strings.Join(missing, ", "))
			}
			return nil
		},
	}
	addOutputFlags(cmd)
	return cmd
}
