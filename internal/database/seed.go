// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package database

import (
	"cmp"
	"context"
	"database/sql"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/tomtom215/groovify/internal/logging"
	"github.com/tomtom215/groovify/internal/models"
)

// Seed generator constants. The same anchor always yields the same dataset.
const (
	seedPCG1 = 0x6368696e6f6f6b // "chinook"
	seedPCG2 = 0x67726f6f76     // "groov"

	seedAlbumsPerArtist  = 2
	seedTracksPerAlbum   = 10
	seedOrdersPerClient  = 7
	seedHistoryDays      = 5 * 365
	seedDailyWindowDays  = 60
	seedUnsoldTrackCount = 60
)

var seedGenres = []string{
	"Rock", "Jazz", "Metal", "Alternative & Punk", "Rock And Roll", "Blues", "Latin",
	"Reggae", "Pop", "Soundtrack", "Bossa Nova", "Easy Listening", "Heavy Metal",
	"R&B/Soul", "Electronica/Dance", "World", "Hip Hop/Rap", "Science Fiction",
	"TV Shows", "Sci Fi & Fantasy", "Drama", "Comedy", "Alternative", "Classical", "Opera",
}

// Video genres are priced at 1.99.
var seedVideoGenres = map[string]bool{
	"Science Fiction": true, "TV Shows": true, "Sci Fi & Fantasy": true, "Drama": true, "Comedy": true,
}

var seedMediaTypes = []string{
	"MPEG audio file", "Protected AAC audio file", "Protected MPEG-4 video file",
	"Purchased AAC audio file", "AAC audio file",
}

var seedArtists = []struct {
	name  string
	genre string
}{
	{"AC/DC", "Rock"}, {"Accept", "Rock"}, {"Aerosmith", "Rock"}, {"Alanis Morissette", "Rock"},
	{"Alice In Chains", "Rock"}, {"Antônio Carlos Jobim", "Bossa Nova"}, {"Apocalyptica", "Metal"},
	{"Audioslave", "Alternative & Punk"}, {"BackBeat", "Rock And Roll"}, {"Billy Cobham", "Jazz"},
	{"Black Label Society", "Metal"}, {"Black Sabbath", "Metal"}, {"Body Count", "Alternative & Punk"},
	{"Bruce Dickinson", "Heavy Metal"}, {"Buddy Guy", "Blues"}, {"Caetano Veloso", "Latin"},
	{"Chico Buarque", "Latin"}, {"Cidade Negra", "Reggae"}, {"Eric Clapton", "Blues"},
	{"Frank Sinatra", "Easy Listening"}, {"Gilberto Gil", "Latin"}, {"Iron Maiden", "Metal"},
	{"Led Zeppelin", "Rock"}, {"Miles Davis", "Jazz"}, {"Amy Winehouse", "R&B/Soul"},
	{"U2", "Rock"}, {"Lost", "TV Shows"}, {"Battlestar Galactica", "Sci Fi & Fantasy"},
	{"The Office", "Comedy"}, {"Berliner Philharmoniker", "Classical"},
}

var seedTitleWords = [][]string{
	{"Blue", "Electric", "Midnight", "Golden", "Broken", "Silent", "Wild", "Burning", "Velvet", "Lost"},
	{"Highway", "Garden", "Thunder", "Heart", "River", "Machine", "Dream", "City", "Fire", "Echo"},
}

var seedEmployees = []struct {
	first, last, title string
	reportsTo          int64
	city               string
}{
	{"Andrew", "Adams", "General Manager", 0, "Edmonton"},
	{"Nancy", "Edwards", "Sales Manager", 1, "Calgary"},
	{"Jane", "Peacock", "Sales Support Agent", 2, "Calgary"},
	{"Margaret", "Park", "Sales Support Agent", 2, "Calgary"},
	{"Steve", "Johnson", "Sales Support Agent", 2, "Calgary"},
	{"Michael", "Mitchell", "IT Manager", 1, "Calgary"},
	{"Robert", "King", "IT Staff", 6, "Lethbridge"},
	{"Laura", "Callahan", "IT Staff", 6, "Lethbridge"},
}

// Support agents own the customer accounts.
var seedSupportReps = []int64{3, 4, 5}

var seedLocations = []struct {
	city, state, country string
}{
	{"São José dos Campos", "SP", "Brazil"}, {"Stuttgart", "", "Germany"}, {"Montréal", "QC", "Canada"},
	{"Oslo", "", "Norway"}, {"Prague", "", "Czech Republic"}, {"Vienne", "", "Austria"},
	{"Brussels", "", "Belgium"}, {"Copenhagen", "", "Denmark"}, {"São Paulo", "SP", "Brazil"},
	{"Rio de Janeiro", "RJ", "Brazil"}, {"Edmonton", "AB", "Canada"}, {"Vancouver", "BC", "Canada"},
	{"Mountain View", "CA", "USA"}, {"Redmond", "WA", "USA"}, {"New York", "NY", "USA"},
	{"Cupertino", "CA", "USA"}, {"Boston", "MA", "USA"}, {"Chicago", "IL", "USA"},
	{"Fort Worth", "TX", "USA"}, {"Paris", "", "France"}, {"Lyon", "", "France"},
	{"Berlin", "", "Germany"}, {"Frankfurt", "", "Germany"}, {"Budapest", "", "Hungary"},
	{"Dublin", "Dublin", "Ireland"}, {"Rome", "RM", "Italy"}, {"Amsterdam", "VV", "Netherlands"},
	{"Warsaw", "", "Poland"}, {"Lisbon", "", "Portugal"}, {"Madrid", "", "Spain"},
	{"Stockholm", "", "Sweden"}, {"London", "", "United Kingdom"}, {"Edinburgh ", "", "United Kingdom"},
	{"Sidney", "NSW", "Australia"}, {"Buenos Aires", "", "Argentina"}, {"Santiago", "", "Chile"},
	{"Delhi", "", "India"}, {"Bangalore", "", "India"}, {"Helsinki", "", "Finland"},
}

var seedFirstNames = []string{
	"Luís", "Leonie", "François", "Bjørn", "František", "Helena", "Astrid", "Daan", "Kara",
	"Eduardo", "Alexandre", "Roberto", "Fernanda", "Mark", "Jennifer", "Frank", "Jack",
	"Michelle", "Tim", "Dan", "Kathy", "Heather", "John", "Robert", "Patrick", "Julia",
}

var seedLastNames = []string{
	"Gonçalves", "Köhler", "Tremblay", "Hansen", "Wichterlová", "Holý", "Gruber", "Peeters",
	"Nielsen", "Martins", "Rocha", "Almeida", "Ramos", "Philips", "Peterson", "Harris",
	"Smith", "Brooks", "Goyer", "Miller", "Chase", "Leacock", "Gordon", "Ralston",
}

var seedPlaylists = []string{
	"Music", "Movies", "TV Shows", "Audiobooks", "90’s Music", "Audiobooks", "Movies",
	"Music", "Music Videos", "TV Shows", "Brazilian Music", "Classical",
	"Classical 101 - Deep Cuts", "Classical 101 - Next Steps", "Classical 101 - The Basics",
	"Grunge", "Heavy Metal Classic", "On-The-Go 1",
}

// Chinook basket sizes.
var seedBasketSizes = []int{1, 2, 2, 4, 4, 6, 9, 14}

// seedAnchor parses the configured anchor date, defaulting to today.
func seedAnchor(value string) time.Time {
	if value != "" {
		if t, err := time.Parse(models.DateLayout, value); err == nil {
			return t
		}
		logging.Warn().Str("seed_anchor", value).Msg("Invalid seed anchor, using today")
	}
	return models.TruncateDay(time.Now().UTC())
}

type seedTrack struct {
	id       int64
	priceCts int64
}

// seeder carries the generator state and prepared statements of one seeding run.
type seeder struct {
	rng     *rand.Rand
	anchor  time.Time
	tx      *sql.Tx
	dialect dialect

	tracks    []seedTrack
	customers []int64
	custLoc   map[int64]int

	nextInvoice int64
	nextLine    int64
}

// SeedMockData fills an empty Chinook schema with a deterministic synthetic dataset whose
// most recent invoice falls on anchor. Each invoice total equals the sum of its lines.
func (db *DB) SeedMockData(ctx context.Context, anchor time.Time) error {
	logging.Info().Str("anchor", anchor.Format(models.DateLayout)).Msg("Seeding Chinook mock data...")

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	s := &seeder{
		rng:     rand.New(rand.NewPCG(seedPCG1, seedPCG2)),
		anchor:  models.TruncateDay(anchor),
		tx:      tx,
		dialect: db.dialect,
		custLoc: make(map[int64]int),
	}

	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"catalogue", s.seedCatalogue},
		{"employees", s.seedEmployees},
		{"customers", s.seedCustomers},
		{"invoices", s.seedInvoices},
		{"playlists", s.seedPlaylists},
	}
	for _, step := range steps {
		if err := step.fn(ctx); err != nil {
			return fmt.Errorf("failed to seed %s: %w", step.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed data: %w", err)
	}

	logging.Info().
		Int("tracks", len(s.tracks)).
		Int("customers", len(s.customers)).
		Int64("invoices", s.nextInvoice).
		Int64("invoice_lines", s.nextLine).
		Msg("Mock data seeded successfully")
	return nil
}

// prepare returns a statement bound to the seed transaction.
func (s *seeder) prepare(ctx context.Context, query string) (*sql.Stmt, error) {
	return s.tx.PrepareContext(ctx, s.dialect.rebind(query))
}

func (s *seeder) seedCatalogue(ctx context.Context) error {
	genreIDs := make(map[string]int64, len(seedGenres))
	stmt, err := s.prepare(ctx, "INSERT INTO genre (genre_id, name) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer closeQuietly(stmt)
	for i, name := range seedGenres {
		id := int64(i + 1)
		genreIDs[name] = id
		if _, err := stmt.ExecContext(ctx, id, name); err != nil {
			return err
		}
	}

	mediaStmt, err := s.prepare(ctx, "INSERT INTO media_type (media_type_id, name) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer closeQuietly(mediaStmt)
	for i, name := range seedMediaTypes {
		if _, err := mediaStmt.ExecContext(ctx, int64(i+1), name); err != nil {
			return err
		}
	}

	artistStmt, err := s.prepare(ctx, "INSERT INTO artist (artist_id, name) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer closeQuietly(artistStmt)
	albumStmt, err := s.prepare(ctx, "INSERT INTO album (album_id, title, artist_id) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer closeQuietly(albumStmt)
	trackStmt, err := s.prepare(ctx, `INSERT INTO track
		(track_id, name, album_id, media_type_id, genre_id, composer, milliseconds, bytes, unit_price)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer closeQuietly(trackStmt)

	var albumID, trackID int64
	for a, artist := range seedArtists {
		artistID := int64(a + 1)
		if _, err := artistStmt.ExecContext(ctx, artistID, artist.name); err != nil {
			return err
		}
		for n := 0; n < seedAlbumsPerArtist; n++ {
			albumID++
			if _, err := albumStmt.ExecContext(ctx, albumID, s.title(), artistID); err != nil {
				return err
			}
			for k := 0; k < seedTracksPerAlbum; k++ {
				trackID++
				genre := artist.genre
				if s.rng.IntN(5) == 0 {
					genre = seedGenres[s.rng.IntN(len(seedGenres))]
				}
				priceCts := int64(99)
				mediaType := int64(1 + s.rng.IntN(2))
				ms := 120_000 + s.rng.IntN(300_000)
				if seedVideoGenres[genre] {
					priceCts = 199
					mediaType = 3
					ms = 1_200_000 + s.rng.IntN(1_800_000)
				}
				_, err := trackStmt.ExecContext(ctx,
					trackID, s.title(), albumID, mediaType, genreIDs[genre], artist.name,
					ms, ms*32, centsToAmount(priceCts))
				if err != nil {
					return err
				}
				s.tracks = append(s.tracks, seedTrack{id: trackID, priceCts: priceCts})
			}
		}
	}
	return nil
}

func (s *seeder) seedEmployees(ctx context.Context) error {
	stmt, err := s.prepare(ctx, `INSERT INTO employee
		(employee_id, last_name, first_name, title, reports_to, birth_date, hire_date,
		 address, city, state, country, postal_code, phone, fax, email)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 'AB', 'Canada', ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer closeQuietly(stmt)

	for i, e := range seedEmployees {
		id := int64(i + 1)
		var reportsTo any
		if e.reportsTo != 0 {
			reportsTo = e.reportsTo
		}
		birth := time.Date(1947+i*3, time.Month(1+i), 10+i, 0, 0, 0, 0, time.UTC)
		hire := s.anchor.AddDate(-6, -i, 0)
		_, err := stmt.ExecContext(ctx,
			id, e.last, e.first, e.title, reportsTo, birth, hire,
			fmt.Sprintf("%d Jasper Ave", 1000+i*111), e.city,
			fmt.Sprintf("T5K %dN%d", i+1, i+2),
			fmt.Sprintf("+1 (780) 428-%04d", 9482+i),
			fmt.Sprintf("+1 (780) 428-%04d", 3457+i),
			fmt.Sprintf("%s@chinookcorp.com", lowerASCII(e.first)))
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) seedCustomers(ctx context.Context) error {
	const numCustomers = 59

	stmt, err := s.prepare(ctx, `INSERT INTO customer
		(customer_id, first_name, last_name, company, address, city, state, country,
		 postal_code, phone, fax, email, support_rep_id)
		VALUES (?, ?, ?, NULL, ?, ?, ?, ?, ?, ?, NULL, ?, ?)`)
	if err != nil {
		return err
	}
	defer closeQuietly(stmt)

	for i := 0; i < numCustomers; i++ {
		id := int64(i + 1)
		first := seedFirstNames[i%len(seedFirstNames)]
		last := seedLastNames[(i*7)%len(seedLastNames)]
		loc := i % len(seedLocations)
		l := seedLocations[loc]
		var state any
		if l.state != "" {
			state = l.state
		}
		_, err := stmt.ExecContext(ctx,
			id, first, last,
			fmt.Sprintf("%d Main Street", 10+i*3), l.city, state, l.country,
			fmt.Sprintf("%05d", 10000+i*137),
			fmt.Sprintf("+1 555 %04d", 1000+i),
			fmt.Sprintf("%s.%s%d@example.com", lowerASCII(first), lowerASCII(last), id),
			seedSupportReps[i%len(seedSupportReps)])
		if err != nil {
			return err
		}
		s.customers = append(s.customers, id)
		s.custLoc[id] = loc
	}
	return nil
}

// seedInvoices writes the sales history: a spread of orders per customer over the full
// history, one order per day over the recent window, and a few outsized recent orders.
func (s *seeder) seedInvoices(ctx context.Context) error {
	invStmt, err := s.prepare(ctx, `INSERT INTO invoice
		(invoice_id, customer_id, invoice_date, billing_address, billing_city, billing_state,
		 billing_country, billing_postal_code, total)
		VALUES (?, ?, ?, NULL, ?, ?, ?, NULL, ?)`)
	if err != nil {
		return err
	}
	defer closeQuietly(invStmt)
	lineStmt, err := s.prepare(ctx, `INSERT INTO invoice_line
		(invoice_line_id, invoice_id, track_id, unit_price, quantity) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer closeQuietly(lineStmt)

	type order struct {
		customer int64
		day      time.Time
		lines    int
		quantity int
	}
	var orders []order

	for _, c := range s.customers {
		for k := 0; k < seedOrdersPerClient; k++ {
			back := seedDailyWindowDays + s.rng.IntN(seedHistoryDays-seedDailyWindowDays)
			orders = append(orders, order{
				customer: c,
				day:      s.anchor.AddDate(0, 0, -back),
				lines:    seedBasketSizes[s.rng.IntN(len(seedBasketSizes))],
				quantity: 1,
			})
		}
	}
	for d := seedDailyWindowDays - 1; d >= 0; d-- {
		orders = append(orders, order{
			customer: s.customers[s.rng.IntN(len(s.customers))],
			day:      s.anchor.AddDate(0, 0, -d),
			lines:    seedBasketSizes[s.rng.IntN(len(seedBasketSizes))],
			quantity: 1,
		})
	}
	// Outliers for the fraud alerts: one expensive single item, one wide basket,
	// one wide and expensive basket.
	orders = append(orders,
		order{customer: s.customers[0], day: s.anchor.AddDate(0, 0, -3), lines: 1, quantity: 120},
		order{customer: s.customers[1], day: s.anchor.AddDate(0, 0, -5), lines: 18, quantity: 1},
		order{customer: s.customers[2], day: s.anchor.AddDate(0, 0, -8), lines: 22, quantity: 5},
	)

	slices.SortStableFunc(orders, func(a, b order) int {
		if c := a.day.Compare(b.day); c != 0 {
			return c
		}
		return cmp.Compare(a.customer, b.customer)
	})

	sellable := len(s.tracks) - seedUnsoldTrackCount
	for _, o := range orders {
		s.nextInvoice++
		invoiceID := s.nextInvoice

		type line struct {
			track    seedTrack
			quantity int
		}
		lines := make([]line, o.lines)
		var totalCts int64
		for i := range lines {
			tr := s.tracks[s.rng.IntN(sellable)]
			lines[i] = line{track: tr, quantity: o.quantity}
			totalCts += tr.priceCts * int64(o.quantity)
		}

		l := seedLocations[s.custLoc[o.customer]]
		var state any
		if l.state != "" {
			state = l.state
		}
		if _, err := invStmt.ExecContext(ctx, invoiceID, o.customer, o.day, l.city, state, l.country,
			centsToAmount(totalCts)); err != nil {
			return err
		}
		for _, ln := range lines {
			s.nextLine++
			if _, err := lineStmt.ExecContext(ctx, s.nextLine, invoiceID, ln.track.id,
				centsToAmount(ln.track.priceCts), ln.quantity); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *seeder) seedPlaylists(ctx context.Context) error {
	plStmt, err := s.prepare(ctx, "INSERT INTO playlist (playlist_id, name) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer closeQuietly(plStmt)
	ptStmt, err := s.prepare(ctx, "INSERT INTO playlist_track (playlist_id, track_id) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer closeQuietly(ptStmt)

	for i, name := range seedPlaylists {
		id := int64(i + 1)
		if _, err := plStmt.ExecContext(ctx, id, name); err != nil {
			return err
		}

		var size int
		switch name {
		case "Movies", "Audiobooks":
			size = 0
		case "Music":
			size = len(s.tracks) / 2
		default:
			size = 10 + s.rng.IntN(40)
		}
		for _, idx := range s.rng.Perm(len(s.tracks))[:size] {
			if _, err := ptStmt.ExecContext(ctx, id, s.tracks[idx].id); err != nil {
				return err
			}
		}
	}
	return nil
}

// title builds a two word title from the generator.
func (s *seeder) title() string {
	return seedTitleWords[0][s.rng.IntN(len(seedTitleWords[0]))] + " " +
		seedTitleWords[1][s.rng.IntN(len(seedTitleWords[1]))]
}

func centsToAmount(cents int64) float64 {
	return float64(cents) / 100
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}
