package sheetstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pastoraldigital/mass-schedule-manager/internal/config"
	"github.com/pastoraldigital/mass-schedule-manager/internal/core/domain"
	"github.com/pastoraldigital/mass-schedule-manager/internal/core/ports/out"
)

// SheetStoreAdapter talks to the remote key-row table service. The remote
// model is a single named table exposed as a raw value grid: GET returns all
// cells, PUT replaces all cells. There is no per-row operation, matching the
// StorePort contract.
type SheetStoreAdapter struct {
	client   *http.Client
	baseURL  string
	table    string
	username string
	password string
	logger   out.LoggerPort
}

type valueGridPayload struct {
	Values [][]string `json:"values"`
}

func NewSheetStoreAdapter(cfg *config.Config, logger out.LoggerPort) *SheetStoreAdapter {
	return &SheetStoreAdapter{
		client:   &http.Client{Timeout: 10 * time.Second},
		baseURL:  cfg.Sheet.URL,
		table:    cfg.Sheet.Table,
		username: cfg.Sheet.Username,
		password: cfg.Sheet.Password,
		logger:   logger,
	}
}

// ReadAll fetches the whole table. On first contact it provisions the header
// row (or any missing columns) before converting, so later writes always have
// the full schema to address.
func (a *SheetStoreAdapter) ReadAll(ctx context.Context) ([]domain.Row, error) {
	values, err := a.fetchGrid(ctx)
	if err != nil {
		return nil, err
	}

	if provisioned, changed := a.provision(values); changed {
		a.logger.Warn("sheetstore.columns.provisioned", out.LogFields{
			"table": a.table,
		})
		if err := a.writeGrid(ctx, provisioned); err != nil {
			return nil, err
		}
		values = provisioned
	}

	rows := gridToRows(values)
	a.logger.Debug("sheetstore.read_all.done", out.LogFields{
		"table": a.table,
		"rows":  len(rows),
	})
	return rows, nil
}

// WriteAll replaces the whole table content.
func (a *SheetStoreAdapter) WriteAll(ctx context.Context, rows []domain.Row) error {
	if err := a.writeGrid(ctx, rowsToGrid(rows)); err != nil {
		return err
	}
	a.logger.Debug("sheetstore.write_all.done", out.LogFields{
		"table": a.table,
		"rows":  len(rows),
	})
	return nil
}

// provision returns the grid with the header row completed, and whether
// anything had to change.
func (a *SheetStoreAdapter) provision(values [][]string) ([][]string, bool) {
	if len(values) == 0 {
		return [][]string{append([]string(nil), expectedColumns...)}, true
	}
	_, missing := columnIndexes(values[0])
	if len(missing) == 0 {
		return values, false
	}
	provisioned := make([][]string, len(values))
	provisioned[0] = append(append([]string(nil), values[0]...), missing...)
	for i, record := range values[1:] {
		padded := append([]string(nil), record...)
		for len(padded) < len(provisioned[0]) {
			padded = append(padded, "")
		}
		provisioned[i+1] = padded
	}
	return provisioned, true
}

func (a *SheetStoreAdapter) fetchGrid(ctx context.Context) ([][]string, error) {
	url := fmt.Sprintf("%s/api/tables/%s/values", a.baseURL, a.table)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	req.SetBasicAuth(a.username, a.password)

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error("sheetstore.read.failed", out.LogFields{
			"table": a.table,
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.logger.Error("sheetstore.read.failed", out.LogFields{
			"table":  a.table,
			"status": resp.StatusCode,
		})
		return nil, fmt.Errorf("%w: unexpected status code %d", domain.ErrStoreUnavailable, resp.StatusCode)
	}

	var payload valueGridPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		a.logger.Error("sheetstore.read.decode_failed", out.LogFields{
			"table": a.table,
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	return payload.Values, nil
}

func (a *SheetStoreAdapter) writeGrid(ctx context.Context, values [][]string) error {
	body, err := json.Marshal(valueGridPayload{Values: values})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	url := fmt.Sprintf("%s/api/tables/%s/values", a.baseURL, a.table)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(a.username, a.password)

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error("sheetstore.write.failed", out.LogFields{
			"table": a.table,
			"error": err.Error(),
		})
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		a.logger.Error("sheetstore.write.failed", out.LogFields{
			"table":  a.table,
			"status": resp.StatusCode,
		})
		return fmt.Errorf("%w: unexpected status code %d", domain.ErrStoreUnavailable, resp.StatusCode)
	}

	return nil
}
