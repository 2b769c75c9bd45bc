package services

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"hotelinfo/constants"
	"hotelinfo/dto"
	"hotelinfo/models"
	"hotelinfo/repository"
	"hotelinfo/services/logger"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"golang.org/x/sync/errgroup"
)

// SearchStore is the part of the repository the search service reads.
type SearchStore interface {
	SearchCandidates(ctx context.Context) ([]models.Hotel, error)
	ListDistinctRoomAmenities(ctx context.Context) ([]models.RoomAmenity, error)
}

type SearchService struct {
	store  SearchStore
	cache  Cache
	logger logger.Logger
}

func NewSearchService(store SearchStore, cache Cache, log logger.Logger) *SearchService {
	if cache == nil {
		cache = NopCache{}
	}
	return &SearchService{store: store, cache: cache, logger: log}
}

const (
	scoreName      = 25
	scoreType      = 20
	scoreRating    = 15
	scoreCity      = 13
	scoreAmenity   = 4
	maxAmenity     = 12
	similarityHigh = 0.75
)

var hotelTypeKeywords = map[int][]string{
	constants.HotelTypeBoutique: {"boutique", "design hotel", "charming", "intimate"},
	constants.HotelTypeBudget:   {"budget", "cheap", "hostel", "economy", "affordable"},
	constants.HotelTypeLuxury:   {"luxury", "luxurious", "resort", "premium", "deluxe"},
}

var ratingPattern = regexp.MustCompile(`(\d)\s*-?\s*(?:star|stars|\*)`)

// Amenities lists the distinct room amenities offered as search filters.
func (s *SearchService) Amenities(ctx context.Context) ([]dto.FilterAmenityDto, error) {
	var cached []dto.FilterAmenityDto
	if ok, err := s.cache.Get(ctx, constants.CacheKeySearchAmenities, &cached); err == nil && ok {
		return cached, nil
	} else if err != nil {
		s.logger.Error("read search amenities from cache: %v", err)
	}

	amenities, err := s.store.ListDistinctRoomAmenities(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FilterAmenityDto, 0, len(amenities))
	for _, a := range amenities {
		out = append(out, dto.FilterAmenityDto{Name: a.Name, Description: a.Description})
	}

	if err := s.cache.Set(ctx, constants.CacheKeySearchAmenities, out, constants.CacheTTL); err != nil {
		s.logger.Error("write search amenities to cache: %v", err)
	}
	return out, nil
}

// Search scores every hotel against query and returns one page of matches,
// best first. An empty query lists all hotels by name.
func (s *SearchService) Search(ctx context.Context, query string, pageNumber, pageSize int) ([]dto.SearchResultDto, repository.PaginationMetaData, error) {
	var (
		hotels    []models.Hotel
		amenities []models.RoomAmenity
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		hotels, err = s.store.SearchCandidates(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		amenities, err = s.store.ListDistinctRoomAmenities(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, repository.PaginationMetaData{}, err
	}

	normalizedQuery := normalizeInput(query)
	vocabulary := make([]string, 0, len(amenities))
	for _, a := range amenities {
		vocabulary = append(vocabulary, a.Name)
	}
	for _, h := range hotels {
		for _, a := range h.HotelAmenities {
			vocabulary = append(vocabulary, a.Name)
		}
	}
	scorer := newScorer(normalizedQuery, prepareUniqueCities(hotels), vocabulary)
	scored := scoreHotels(scorer, hotels, normalizedQuery == "")

	pageNumber, pageSize = repository.NormalizePage(pageNumber, pageSize)
	meta := repository.NewPaginationMetaData(int64(len(scored)), pageSize, pageNumber)
	start := (pageNumber - 1) * pageSize
	if start > len(scored) {
		start = len(scored)
	}
	end := start + pageSize
	if end > len(scored) {
		end = len(scored)
	}
	return scored[start:end], meta, nil
}

type scorer struct {
	query        string
	hotelType    int
	rating       int
	closestCity  string
	matchedTerms map[string]bool
}

func newScorer(query string, cities, amenityNames []string) *scorer {
	sc := &scorer{
		query:        query,
		hotelType:    parseHotelType(query),
		rating:       extractRatingFromQuery(query),
		matchedTerms: make(map[string]bool),
	}
	if query == "" {
		return sc
	}
	if len(cities) > 0 {
		sc.closestCity = createMatcher(cities).Closest(query)
	}
	for _, name := range amenityNames {
		normalized := normalizeInput(name)
		if normalized == "" || sc.matchedTerms[normalized] {
			continue
		}
		if strings.Contains(query, normalized) || bestWindowSimilarity(query, normalized) > similarityHigh {
			sc.matchedTerms[normalized] = true
		}
	}
	return sc
}

func (sc *scorer) score(h models.Hotel) int {
	score := 0
	name := normalizeInput(h.Name)
	if name != "" && (strings.Contains(sc.query, name) || bestWindowSimilarity(sc.query, name) > similarityHigh) {
		score += scoreName
	}
	if sc.hotelType != -1 && sc.hotelType == h.HotelType {
		score += scoreType
	}
	if sc.rating != -1 && sc.rating == h.StarRating {
		score += scoreRating
	}
	score += sc.cityScore(h)
	score += sc.amenityScore(h)
	return score
}

func (sc *scorer) cityScore(h models.Hotel) int {
	if h.City == nil || sc.closestCity == "" {
		return 0
	}
	city := normalizeInput(h.City.Name)
	if sc.closestCity != city {
		return 0
	}
	if strings.Contains(sc.query, city) || bestWindowSimilarity(sc.query, city) > similarityHigh {
		return scoreCity
	}
	return 0
}

func (sc *scorer) amenityScore(h models.Hotel) int {
	if len(sc.matchedTerms) == 0 {
		return 0
	}
	seen := make(map[string]bool)
	score := 0
	for _, name := range hotelAmenityNames(h) {
		normalized := normalizeInput(name)
		if seen[normalized] || !sc.matchedTerms[normalized] {
			continue
		}
		seen[normalized] = true
		score += scoreAmenity
		if score >= maxAmenity {
			return maxAmenity
		}
	}
	return score
}

func scoreHotels(sc *scorer, hotels []models.Hotel, keepAll bool) []dto.SearchResultDto {
	results := make([]dto.SearchResultDto, 0, len(hotels))
	scoreCh := make(chan dto.SearchResultDto, len(hotels))
	var wg sync.WaitGroup

	for _, h := range hotels {
		wg.Add(1)
		go func(h models.Hotel) {
			defer wg.Done()
			score := 0
			if !keepAll {
				score = sc.score(h)
				if score == 0 {
					return
				}
			}
			scoreCh <- toSearchResult(h, score)
		}(h)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	for r := range scoreCh {
		results = append(results, r)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		if results[i].HotelName != results[j].HotelName {
			return results[i].HotelName < results[j].HotelName
		}
		return results[i].HotelID < results[j].HotelID
	})
	return results
}

func toSearchResult(h models.Hotel, score int) dto.SearchResultDto {
	out := dto.SearchResultDto{
		HotelID:    h.ID,
		HotelName:  h.Name,
		HotelType:  constants.HotelTypeNames[h.HotelType],
		StarRating: h.StarRating,
		Amenities:  hotelAmenityNames(h),
		Score:      score,
	}
	if h.City != nil {
		out.CityName = h.City.Name
	}
	if len(h.Photos) > 0 {
		out.ThumbnailURL = h.Photos[0].URL
	}
	minPrice := math.MaxFloat64
	for i := range h.Rooms {
		if cost := h.Rooms[i].EffectiveCost(); cost < minPrice {
			minPrice = cost
		}
	}
	if minPrice != math.MaxFloat64 {
		out.RoomPrice = minPrice
	}
	return out
}

// hotelAmenityNames lists the hotel's own amenities followed by those of its rooms, deduplicated.
func hotelAmenityNames(h models.Hotel) []string {
	seen := make(map[string]bool)
	names := make([]string, 0, len(h.HotelAmenities))
	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	}
	for _, a := range h.HotelAmenities {
		add(a.Name)
	}
	for _, r := range h.Rooms {
		for _, a := range r.RoomAmenities {
			add(a.Name)
		}
	}
	return names
}

func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len([]rune(a)))
	if l := float64(len([]rune(b))); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

// bestWindowSimilarity compares term against every run of query words with
// the same word count and returns the best similarity.
func bestWindowSimilarity(query, term string) float64 {
	words := strings.Fields(query)
	size := len(strings.Fields(term))
	if size == 0 || len(words) < size {
		return 0
	}
	best := 0.0
	for i := 0; i+size <= len(words); i++ {
		if sim := calculateSimilarity(strings.Join(words[i:i+size], " "), term); sim > best {
			best = sim
		}
	}
	return best
}

func extractRatingFromQuery(query string) int {
	match := ratingPattern.FindStringSubmatch(query)
	if len(match) < 2 {
		return -1
	}
	rating, err := strconv.Atoi(match[1])
	if err != nil || rating < 1 || rating > 5 {
		return -1
	}
	return rating
}

// parseHotelType returns the hotel type named in query, or -1. Literal
// keywords win over misspelled ones.
func parseHotelType(query string) int {
	if query == "" {
		return -1
	}
	types := []int{constants.HotelTypeBoutique, constants.HotelTypeBudget, constants.HotelTypeLuxury}
	for _, hotelType := range types {
		for _, k := range hotelTypeKeywords[hotelType] {
			if strings.Contains(query, k) {
				return hotelType
			}
		}
	}

	// "hotel" is one edit away from "hostel"
	words := make([]string, 0)
	for _, w := range strings.Fields(query) {
		if !genericWords[w] {
			words = append(words, w)
		}
	}
	rest := strings.Join(words, " ")
	for _, hotelType := range types {
		for _, k := range hotelTypeKeywords[hotelType] {
			if bestWindowSimilarity(rest, k) > similarityHigh {
				return hotelType
			}
		}
	}
	return -1
}

var genericWords = map[string]bool{"hotel": true, "hotels": true}

func prepareUniqueCities(hotels []models.Hotel) []string {
	unique := make(map[string]bool)
	for _, h := range hotels {
		if h.City != nil && h.City.Name != "" {
			unique[normalizeInput(h.City.Name)] = true
		}
	}
	list := make([]string, 0, len(unique))
	for c := range unique {
		list = append(list, c)
	}
	sort.Strings(list)
	return list
}
