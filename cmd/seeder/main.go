// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/lanelist"
	"github.com/poiesic/lanelist/core"
)

func ptr(f float64) *float64 { return &f }

var carriers = []*core.Carrier{
	{
		Name:     "Alpine Logistics",
		Verified: true,
		Rating:   ptr(4.7),
		Types:    []core.TransportType{core.TransportTruck, core.TransportReefer},
		Lanes: []core.Lane{
			{Origin: "FR", Destination: "DE"},
			{Origin: "DE", Destination: "AT"},
			{Origin: "AT", Destination: "IT"},
		},
		Description: "Temperature-controlled and general cargo across the Alpine corridor.",
		Contact:     &core.Contact{Email: "dispatch@alpinelogistics.example", Phone: "+33 4 72 00 11 22"},
		LogoEmoji:   "🏔️",
	},
	{
		Name:     "Iberia Freight Lines",
		Verified: true,
		Rating:   ptr(4.4),
		Types:    []core.TransportType{core.TransportTruck, core.TransportFlatbed},
		Lanes: []core.Lane{
			{Origin: "FR", Destination: "ES"},
			{Origin: "ES", Destination: "PT"},
		},
		Description: "Daily departures between France and the Iberian peninsula.",
		Contact:     &core.Contact{Email: "ops@iberiafreight.example"},
		LogoEmoji:   "🚛",
	},
	{
		Name:     "Baltic Reefer Express",
		Verified: true,
		Rating:   ptr(4.8),
		Types:    []core.TransportType{core.TransportReefer},
		Lanes: []core.Lane{
			{Origin: "PL", Destination: "SE"},
			{Origin: "LT", Destination: "FI"},
			{Origin: "PL", Destination: "DE"},
		},
		Description: "Cold chain specialists serving the Baltic rim.",
		Contact:     &core.Contact{Email: "booking@balticreefer.example", Phone: "+48 58 300 40 50"},
		LogoEmoji:   "❄️",
	},
	{
		Name:     "Rhine Container Services",
		Verified: true,
		Rating:   ptr(4.2),
		Types:    []core.TransportType{core.TransportContainer},
		Lanes: []core.Lane{
			{Origin: "NL", Destination: "DE"},
			{Origin: "DE", Destination: "CH"},
			{Origin: "NL", Destination: "BE"},
		},
		Description: "Container haulage along the Rhine corridor with rail interchange.",
		Contact:     &core.Contact{Email: "sales@rhinecontainer.example"},
		LogoEmoji:   "📦",
	},
	{
		Name:     "Nordkap Tanker Group",
		Verified: true,
		Rating:   ptr(4.5),
		Types:    []core.TransportType{core.TransportTanker},
		Lanes: []core.Lane{
			{Origin: "NO", Destination: "SE"},
			{Origin: "NO", Destination: "DK"},
		},
		Description: "Bulk liquid transport for food-grade and chemical products.",
		Contact:     &core.Contact{Email: "charter@nordkaptanker.example", Phone: "+47 22 11 33 44"},
		LogoEmoji:   "🛢️",
	},
	{
		Name:     "Carpathia Haulage",
		Verified: false,
		Rating:   ptr(3.9),
		Types:    []core.TransportType{core.TransportTruck},
		Lanes: []core.Lane{
			{Origin: "RO", Destination: "HU"},
			{Origin: "RO", Destination: "DE"},
		},
		Description: "General cargo from Romania into central Europe.",
		LogoEmoji:   "🚚",
	},
	{
		Name:     "Channel Bridge Transport",
		Verified: true,
		Rating:   ptr(4.6),
		Types:    []core.TransportType{core.TransportTruck, core.TransportContainer},
		Lanes: []core.Lane{
			{Origin: "GB", Destination: "FR"},
			{Origin: "GB", Destination: "BE"},
			{Origin: "GB", Destination: "NL"},
		},
		Description: "Cross-channel groupage and full loads with customs handling.",
		Contact:     &core.Contact{Email: "quotes@channelbridge.example", Phone: "+44 1304 555 777"},
		LogoEmoji:   "🌉",
	},
	{
		Name:     "Adriatic Flatbed",
		Verified: false,
		Types:    []core.TransportType{core.TransportFlatbed},
		Lanes: []core.Lane{
			{Origin: "IT", Destination: "HR"},
			{Origin: "IT", Destination: "SI"},
		},
		Description: "Oversized and project cargo around the Adriatic.",
		LogoEmoji:   "🏗️",
	},
	{
		Name:     "Meseta Cargo",
		Verified: true,
		Rating:   ptr(4.1),
		Types:    []core.TransportType{core.TransportTruck, core.TransportReefer},
		Lanes: []core.Lane{
			{Origin: "ES", Destination: "FR"},
			{Origin: "ES", Destination: "DE"},
			{Origin: "ES", Destination: "IT"},
		},
		Description: "Produce exports from central Spain to European markets.",
		Contact:     &core.Contact{Email: "export@mesetacargo.example"},
		LogoEmoji:   "🍊",
	},
	{
		Name:     "Hanse Container Line",
		Verified: true,
		Rating:   ptr(4.3),
		Types:    []core.TransportType{core.TransportContainer, core.TransportTruck},
		Lanes: []core.Lane{
			{Origin: "DE", Destination: "PL"},
			{Origin: "DE", Destination: "DK"},
			{Origin: "DE", Destination: "NL"},
		},
		Description: "Port drayage and inland container moves from Hamburg and Bremerhaven.",
		Contact:     &core.Contact{Email: "dispo@hansecontainer.example", Phone: "+49 40 888 99 00"},
		LogoEmoji:   "⚓",
	},
	{
		Name:     "Loire Valley Reefer",
		Verified: false,
		Rating:   ptr(4.0),
		Types:    []core.TransportType{core.TransportReefer},
		Lanes: []core.Lane{
			{Origin: "FR", Destination: "ES"},
			{Origin: "FR", Destination: "GB"},
		},
		Description: "Chilled distribution for dairy and fresh produce.",
		LogoEmoji:   "🧀",
	},
	{
		Name:     "Vistula Tank Logistics",
		Verified: true,
		Rating:   ptr(4.4),
		Types:    []core.TransportType{core.TransportTanker, core.TransportTruck},
		Lanes: []core.Lane{
			{Origin: "PL", Destination: "DE"},
			{Origin: "PL", Destination: "CZ"},
		},
		Description: "Liquid bulk and ADR transport from Poland.",
		Contact:     &core.Contact{Email: "adr@vistulatank.example"},
		LogoEmoji:   "⚗️",
	},
}

var (
	dbPath       = flag.String("db", "./carrier_db", "path to BadgerDB database directory")
	seedFileName = flag.String("src", "", "JSON file of seed carriers")
	poolSize     = flag.Int("workers", 4, "concurrent insert workers")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// carriersFromFile loads seed carriers from a JSON array file.
func carriersFromFile(filename string) ([]*core.Carrier, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var loaded []*core.Carrier
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, err
	}
	return loaded, nil
}

func main() {
	dir, err := lanelist.NewDirectory(*dbPath)
	if err != nil {
		panic(err)
	}
	defer dir.Close()

	source := carriers
	if seedFileName != nil && *seedFileName != "" {
		source, err = carriersFromFile(*seedFileName)
		if err != nil {
			panic(err)
		}
	}

	pool, err := ants.NewPool(*poolSize)
	if err != nil {
		panic(err)
	}
	defer pool.Release()

	repo := dir.CarrierRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	inserted, failed := 0, 0

	for _, carrier := range source {
		carrier := carrier
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			added, err := repo.AddCarriers(ctx, carrier)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
				slog.Error("seed failed", "carrier", carrier.Name, "err", err)
				return
			}
			inserted++
			slog.Info("seeded", "carrier", added[0].Name, "id", added[0].ID)
		}); err != nil {
			wg.Done()
			panic(err)
		}
	}
	wg.Wait()

	slog.Info("done", "inserted", inserted, "failed", failed)
}
