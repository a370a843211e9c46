// Package chart seeds the chart of accounts and accounting periods from a YAML file.
package chart

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"gopkg.in/yaml.v3"
)

// Chart is the seed file layout.
//
//	accounts:
//	  - number: "1000"
//	    name: Cash
//	    type: ASSET
//	  - number: "1010"
//	    name: Petty cash
//	    type: ASSET
//	    parent: "1000"
//	periods:
//	  - name: 2024-06
//	    type: MONTHLY
//	    start: 2024-06-01
//	    end: 2024-06-30
type Chart struct {
	Accounts []AccountSeed `yaml:"accounts"`
	Periods  []PeriodSeed  `yaml:"periods"`
}

type AccountSeed struct {
	Number      string `yaml:"number"`
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Parent      string `yaml:"parent"` // parent account number
	Description string `yaml:"description"`
	System      bool   `yaml:"system"`
}

type PeriodSeed struct {
	Name    string    `yaml:"name"`
	Type    string    `yaml:"type"`
	Start   time.Time `yaml:"start"`
	End     time.Time `yaml:"end"`
	Current bool      `yaml:"current"`
}

// Result counts what Apply created.
type Result struct {
	AccountsCreated int
	AccountsSkipped int
	PeriodsCreated  int
	PeriodsSkipped  int
}

// LoadFile reads a chart from path.
func LoadFile(path string) (*Chart, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open chart of accounts: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes a chart. Unknown keys are rejected.
func Load(r io.Reader) (*Chart, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Chart
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return &c, nil
		}
		return nil, fmt.Errorf("failed to decode chart of accounts: %w", err)
	}
	return &c, nil
}

// Apply creates the accounts and periods that do not exist yet.
// Accounts are matched by number and periods by name, so reapplying a chart is a no-op.
// A parent must appear before its children.
func Apply(ctx context.Context, c *Chart, accounts portssvc.AccountSvcFacade, periods portssvc.PeriodSvcFacade, logger *slog.Logger) (Result, error) {
	var res Result

	existing, err := accounts.ListAccounts(ctx, domain.AccountFilter{})
	if err != nil {
		return res, err
	}
	idByNumber := make(map[string]string, len(existing)+len(c.Accounts))
	for _, a := range existing {
		idByNumber[a.Number] = a.AccountID
	}

	for _, seed := range c.Accounts {
		if _, ok := idByNumber[seed.Number]; ok {
			res.AccountsSkipped++
			continue
		}

		account := domain.Account{
			Number:      seed.Number,
			Name:        seed.Name,
			AccountType: domain.AccountType(seed.Type),
			Description: seed.Description,
			IsSystem:    seed.System,
		}
		if seed.Parent != "" {
			parentID, ok := idByNumber[seed.Parent]
			if !ok {
				return res, fmt.Errorf("%w: account %s references unknown parent %s", apperrors.ErrValidation, seed.Number, seed.Parent)
			}
			account.ParentAccountID = &parentID
		}

		created, err := accounts.CreateAccount(ctx, account)
		if err != nil {
			return res, fmt.Errorf("account %s: %w", seed.Number, err)
		}
		idByNumber[created.Number] = created.AccountID
		res.AccountsCreated++
	}

	existingPeriods, err := periods.ListPeriods(ctx)
	if err != nil {
		return res, err
	}
	periodNames := make(map[string]bool, len(existingPeriods))
	for _, p := range existingPeriods {
		periodNames[p.Name] = true
	}

	for _, seed := range c.Periods {
		if periodNames[seed.Name] {
			res.PeriodsSkipped++
			continue
		}
		_, err := periods.CreatePeriod(ctx, domain.Period{
			Name:       seed.Name,
			PeriodType: domain.PeriodType(seed.Type),
			StartDate:  seed.Start,
			EndDate:    seed.End,
			IsCurrent:  seed.Current,
		})
		if err != nil {
			return res, fmt.Errorf("period %s: %w", seed.Name, err)
		}
		periodNames[seed.Name] = true
		res.PeriodsCreated++
	}

	logger.Info("Chart of accounts applied",
		slog.Int("accounts_created", res.AccountsCreated),
		slog.Int("accounts_skipped", res.AccountsSkipped),
		slog.Int("periods_created", res.PeriodsCreated),
		slog.Int("periods_skipped", res.PeriodsSkipped))
	return res, nil
}
