package seed

import (
	"pointscontrol/internal/models"
	dbconfig "pointscontrol/pkg/config"

	logger "github.com/sirupsen/logrus"
)

// DeleteUserPointHistory deletes all user point history records.
func DeleteUserPointHistory() error {
	logger.Info("Deleting all user point history records...")
	result := dbconfig.DB.Where("1 = 1").Delete(&models.PointsUserPointHistory{})
	if result.Error != nil {
		return result.Error
	}
	logger.Infof("Deleted %d user point history record(s).", result.RowsAffected)
	return nil
}
