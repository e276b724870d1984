package engine

import (
	"context"
	"fmt"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// DefaultEngine is the production implementation of Engine. It routes each
// audit type to its domain engine; the CLI constructs one DefaultEngine and
// never talks to the domain engines directly.
type DefaultEngine struct {
	network Engine
	account Engine
	all     Engine
}

// NewDefaultEngine constructs a DefaultEngine wired to the supplied domain
// engines.
func NewDefaultEngine(network *NetworkEngine, account *AccountEngine, all *AllEngine) *DefaultEngine {
	return &DefaultEngine{
		network: network,
		account: account,
		all:     all,
	}
}

// RunAudit implements Engine by dispatching on opts.AuditType.
func (e *DefaultEngine) RunAudit(ctx context.Context, opts AuditOptions) (*models.AuditReport, error) {
	switch opts.AuditType {
	case AuditTypeNetwork:
		return e.network.RunAudit(ctx, opts)
	case AuditTypeAccount:
		return e.account.RunAudit(ctx, opts)
	case AuditTypeAll:
		return e.all.RunAudit(ctx, opts)
	default:
		return nil, fmt.Errorf("unsupported audit type: %q", opts.AuditType)
	}
}
