package services

import (
	"errors"

	"github.com/Sathvik1533/Skillsync/internal/common"
)

func isUnauthorized(err error) bool {
	return errors.Is(err, common.ErrUnauthorized)
}
