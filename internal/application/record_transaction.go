package application

import (
	"context"
	"fmt"

	"github.com/zerotrustlabs/compliance-backend/internal/domain"
	"go.uber.org/zap"
)

type RecordTransactionUseCase struct {
	repository domain.ComplianceRepository
	messageBus domain.MessageBus
	logger     *zap.SugaredLogger
}

func NewRecordTransactionUseCase(
	repository domain.ComplianceRepository,
	messageBus domain.MessageBus,
	logger *zap.SugaredLogger,
) *RecordTransactionUseCase {
	return &RecordTransactionUseCase{
		repository: repository,
		messageBus: messageBus,
		logger:     logger,
	}
}

// executes the record transaction use case
func (u *RecordTransactionUseCase) Execute(ctx context.Context, accountID string, amount uint64, transactionType, counterpartyHash string) error {
	record, err := u.repository.GetAml(ctx, accountID)
	if err != nil {
		return err
	}

	flagsBefore := record.SuspiciousFlags
	record.RecordTransaction(amount, transactionType, counterpartyHash)

	if err := u.repository.SaveAml(ctx, record); err != nil {
		u.logger.Errorw("failed to save aml record", "account_id", accountID, "error", err)
		return fmt.Errorf("failed to save aml record: %w", err)
	}

	if record.SuspiciousFlags != flagsBefore {
		u.logger.Warnw("suspicious activity detected", "account_id", accountID, "flags", record.SuspiciousFlags)

		event := domain.NewEvent(domain.EventSuspiciousActivity, &domain.SuspiciousActivityPayload{
			AccountID: accountID,
			Flags:     record.SuspiciousFlags,
		})
		if err := u.messageBus.Publish(ctx, domain.EventSuspiciousActivity, event); err != nil {
			u.logger.Warnw("failed to publish suspicious activity event", "account_id", accountID, "error", err)
		}
	}

	count, volume := record.Stats()
	u.logger.Debugw("transaction recorded", "account_id", accountID, "transaction_count", count, "total_volume", volume)

	return nil
}
