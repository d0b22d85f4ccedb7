package seed

import (
	"pointscontrol/internal/models"
	dbconfig "pointscontrol/pkg/config"

	logger "github.com/sirupsen/logrus"
)

// The summary table is written by the campaign points triggers, so the seeder
// only ever deletes from it.

// DeleteUserPoints deletes all user point summary records.
func DeleteUserPoints() error {
	logger.Info("Deleting all user point summary records...")
	result := dbconfig.DB.Where("1 = 1").Delete(&models.PointsUserPoint{})
	if result.Error != nil {
		return result.Error
	}
	logger.Infof("Deleted %d user point summary record(s).", result.RowsAffected)
	return nil
}
