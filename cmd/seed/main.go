package main

import (
	"context"
	"flag"
	"log"

	"github.com/stpnv0/StayBooker/internal/app"
	"github.com/stpnv0/StayBooker/internal/config"
	"github.com/stpnv0/StayBooker/internal/seed"
)

func main() {
	var opts seed.Options
	flag.IntVar(&opts.Users, "users", 5, "number of users to create")
	flag.IntVar(&opts.Listings, "listings", 10, "number of listings to create")
	flag.IntVar(&opts.Bookings, "bookings", 20, "number of bookings to create")
	flag.IntVar(&opts.Reviews, "reviews", 15, "number of reviews to create")
	flag.BoolVar(&opts.Clear, "clear", false, "clear existing data before seeding")
	flag.Parse()

	cfg := config.MustLoad()
	// seeded history lies in the past and settles through explicit transitions
	cfg.Booking.AllowPastCheckIn = true
	cfg.Booking.AutoConfirm = false

	application, svc, err := app.NewWithServices(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}
	defer application.Close()

	s := seed.New(svc.Users, svc.Listings, svc.Bookings, svc.Reviews, svc.Maintenance, application.Logger())
	if _, err = s.Run(context.Background(), opts); err != nil {
		application.Close()
		log.Fatalf("seed: %v", err)
	}
}
