package maxmind

import (
	"errors"
	"net"
	"os"

	"blinkgate.io/infrastructure/ipresolver/types"
	"blinkgate.io/infrastructure/logger"
	"github.com/oschwald/maxminddb-golang"
)

var db *maxminddb.Reader

type MaxMindIPResolver struct{}

func (mmResolver *MaxMindIPResolver) ConnectToDB() {
	dbPath := os.Getenv("MAXMIND_DB_PATH")
	if dbPath == "" {
		dbPath = "infrastructure/ipresolver/maxmind/GeoLite2-City.mmdb"
	}
	var err error
	db, err = maxminddb.Open(dbPath)
	if err != nil {
		logger.Error("could not open mmdb. ip lookups will be skipped", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return
	}
	logger.Info("connected to maxmind db successfully")
}

type maxmindLookupResult struct {
	City struct {
		Names map[string]string `maxminddb:"names"`
	} `maxminddb:"city"`
	Location struct {
		Longitude      float64 `maxminddb:"longitude"`
		Latitude       float64 `maxminddb:"latitude"`
		AccuracyRadius int     `maxminddb:"accuracy_radius"`
	} `maxminddb:"location"`
	Country struct {
		ISOCode string `maxminddb:"iso_code"`
	} `maxminddb:"country"`
}

func (mmResolver *MaxMindIPResolver) LookUp(ipAddress string) (*types.IPResult, error) {
	if db == nil {
		return nil, errors.New("maxmind db is not loaded")
	}
	ip := net.ParseIP(ipAddress)
	if ip == nil {
		return nil, errors.New("invalid ip address")
	}
	var result maxmindLookupResult
	err := db.Lookup(ip, &result)
	if err != nil {
		return nil, err
	}
	return &types.IPResult{
		Longitude:      result.Location.Longitude,
		Latitude:       result.Location.Latitude,
		City:           result.City.Names["en"],
		CountryCode:    result.Country.ISOCode,
		AccuracyRadius: result.Location.AccuracyRadius,
		IPAddress:      ipAddress,
	}, nil
}
