package app

import (
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"

	"unified-ledger/domain"
)

// loggingService decorates a Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

// leveled logs failed calls at warn and the rest at debug.
func (s *loggingService) leveled(err error) log.Logger {
	if err != nil {
		return level.Warn(s.logger)
	}
	return level.Debug(s.logger)
}

func (s *loggingService) AddAccount(account domain.Holder) (id uuid.UUID) {
	defer func(begin time.Time) {
		s.leveled(nil).Log(
			"method", "add_account",
			"id", id,
			"currency", account.Currency(),
			"took", time.Since(begin),
		)
	}(time.Now())
	return s.next.AddAccount(account)
}

func (s *loggingService) GetAccount(id uuid.UUID) (view domain.AccountView, err error) {
	defer func(begin time.Time) {
		s.leveled(err).Log(
			"method", "get_account",
			"id", id,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.GetAccount(id)
}

func (s *loggingService) AddAccountMoney(id uuid.UUID, amount float64) (err error) {
	defer func(begin time.Time) {
		s.leveled(err).Log(
			"method", "add_account_money",
			"id", id,
			"amount", amount,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.AddAccountMoney(id, amount)
}

func (s *loggingService) RetrieveAccountMoney(id uuid.UUID, amount float64) (retrieved float64, err error) {
	defer func(begin time.Time) {
		s.leveled(err).Log(
			"method", "retrieve_account_money",
			"id", id,
			"amount", amount,
			"retrieved", retrieved,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.RetrieveAccountMoney(id, amount)
}

func (s *loggingService) GetAccountMoney(id uuid.UUID) (value float64, err error) {
	defer func(begin time.Time) {
		s.leveled(err).Log(
			"method", "get_account_money",
			"id", id,
			"value", value,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.GetAccountMoney(id)
}

func (s *loggingService) RenameAccount(id uuid.UUID, name string) (err error) {
	defer func(begin time.Time) {
		s.leveled(err).Log(
			"method", "rename_account",
			"id", id,
			"name", name,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.RenameAccount(id, name)
}

func (s *loggingService) Accounts() (views []domain.AccountView) {
	defer func(begin time.Time) {
		s.leveled(nil).Log(
			"method", "accounts",
			"count", len(views),
			"took", time.Since(begin),
		)
	}(time.Now())
	return s.next.Accounts()
}
