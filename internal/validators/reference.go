package validators

import "gorm.io/gorm"

// Exists reports whether a row of the given model has the id in the given
// primary-key column. Used to turn would-be foreign-key violations into
// client errors before the insert is attempted.
func Exists(db *gorm.DB, model any, column string, id uint) (bool, error) {
	var count int64
	if err := db.Model(model).
		Where(column+" = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}
