package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"innkeep/infras/otel"
	"innkeep/infras/postgres"
	"innkeep/internal/domains/booking/model"
	notificationModel "innkeep/internal/domains/notification/model"
	paymentModel "innkeep/internal/domains/payment/model"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/logger"
	gRepo "innkeep/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertWithEffects(ctx context.Context, booking model.Booking, payment paymentModel.Payment, notification notificationModel.Notification) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	paymentRepo      gRepo.Repository[paymentModel.Payment]
	notificationRepo gRepo.Repository[notificationModel.Notification]
	db               *postgres.Connection
	otel             otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository:       gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		paymentRepo:      gRepo.NewRepository[paymentModel.Payment](paymentModel.EntityName, paymentModel.TableName, paymentModel.FieldID, db, otel),
		notificationRepo: gRepo.NewRepository[notificationModel.Notification](notificationModel.EntityName, notificationModel.TableName, notificationModel.FieldID, db, otel),
		db:               db,
		otel:             otel,
	}
}

// InsertWithEffects writes the booking together with its derived payment and
// notification in one transaction. Either all three rows land or none do.
func (repo *repositoryImpl) InsertWithEffects(ctx context.Context, booking model.Booking, payment paymentModel.Payment, notification notificationModel.Notification) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.InsertWithEffects")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.Beginx()
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin booking transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = repo.Repository.InsertTx(ctx, tx, booking); err != nil {
		return err
	}

	if err = repo.paymentRepo.InsertTx(ctx, tx, payment); err != nil {
		return err
	}

	if err = repo.notificationRepo.InsertTx(ctx, tx, notification); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit booking transaction: %w", err)
	}

	return nil
}
