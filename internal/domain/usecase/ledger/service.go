package ledger

import (
	coreport "github.com/tipstream/tip-ledger/internal/domain/port/core"
	"github.com/tipstream/tip-ledger/internal/domain/port/persistence"
	"github.com/tipstream/tip-ledger/internal/domain/port/usecase"
)

// Engine is the transaction engine: the only write path for balances and
// the ledger log besides the settlement reconciler. Every operation runs
// as one all-or-nothing unit of work against the ledger store.
type Engine struct {
	uow          persistence.UnitOfWork
	validator    *Validator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// Compile-time check that Engine satisfies the ledger use case port
var _ usecase.LedgerUseCase = (*Engine)(nil)

// NewEngine creates a transaction engine bound to the given unit of work
func NewEngine(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Engine {
	return &Engine{
		uow:          uow,
		validator:    NewValidator(),
		timeProvider: timeProvider,
		logger:       logger,
	}
}
