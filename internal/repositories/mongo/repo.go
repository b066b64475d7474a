package mongo

import (
	"errors"

	"github.com/infoaidtech/backend/internal/utils"
	"go.mongodb.org/mongo-driver/mongo"
)

// mapErr converts driver errors to the repository sentinels.
func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return utils.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return utils.ErrDuplicate
	default:
		return err
	}
}
