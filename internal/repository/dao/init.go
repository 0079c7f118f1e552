package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&ProvinceCategory{},
		&Province{},
		&Hotel{},
		&TicketType{},
		&TicketUsageRule{},
		&TicketCampaign{},
		&TicketCampaignTicketType{},
		&Ticket{},
		&Booking{},
		&BookingRescheduleLog{},
	)
}
