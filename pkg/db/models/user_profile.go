package models

import "time"

// UserProfile stores the delivery details for an identity-service user. The
// primary key is the external identity uid, not a locally minted id.
type UserProfile struct {
	UserID       string    `gorm:"column:user_id;primaryKey"`
	Name         string    `gorm:"column:name;not null;default:''"`
	Phone        string    `gorm:"column:phone;not null;default:''"`
	BaseLocation string    `gorm:"column:base_location;not null;default:''"`
	SubLocation  string    `gorm:"column:sub_location;not null;default:''"`
	Building     string    `gorm:"column:building;not null;default:''"`
	Floor        string    `gorm:"column:floor;not null;default:''"`
	Room         string    `gorm:"column:room;not null;default:''"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// Complete reports whether the profile carries enough location data to price
// and place an order.
func (p UserProfile) Complete() bool {
	return p.BaseLocation != "" && p.SubLocation != ""
}
