package geo

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/shenikar/tourist_safety_system/internal/models"
)

// DefaultStationName - участок по умолчанию, если местоположение не удалось разобрать
const DefaultStationName = "Nearest Police Station"

// ErrNoStations возвращается, если реестр участков пуст
var ErrNoStations = errors.New("station registry is empty")

// Directory - неизменяемый реестр участков в порядке регистрации
type Directory struct {
	stations []models.Station
}

// NewDirectory создает реестр из копии переданного списка
func NewDirectory(stations []models.Station) *Directory {
	copied := make([]models.Station, len(stations))
	copy(copied, stations)
	return &Directory{stations: copied}
}

// Stations возвращает копию списка участков
func (d *Directory) Stations() []models.Station {
	out := make([]models.Station, len(d.stations))
	copy(out, d.stations)
	return out
}

// Nearest возвращает имя ближайшего к точке участка.
// При равных расстояниях выигрывает участок, зарегистрированный раньше.
func (d *Directory) Nearest(lat, lon float64) (string, error) {
	if len(d.stations) == 0 {
		return "", ErrNoStations
	}

	best := math.MaxFloat64
	name := d.stations[0].Name
	for _, s := range d.stations {
		dist := DistanceKm(lat, lon, s.Latitude, s.Longitude)
		if dist < best {
			best = dist
			name = s.Name
		}
	}
	return name, nil
}

// NearestOrDefault разбирает строку вида "lat,lon" и ищет ближайший участок.
// Если строку разобрать не удалось, возвращается defaultName без ошибки.
func (d *Directory) NearestOrDefault(location, defaultName string) (string, error) {
	lat, lon, ok := ParseCoordinates(location)
	if !ok {
		return defaultName, nil
	}
	return d.Nearest(lat, lon)
}

// ParseCoordinates разбирает "lat,lon" по первой запятой
func ParseCoordinates(location string) (lat, lon float64, ok bool) {
	latStr, lonStr, found := strings.Cut(location, ",")
	if !found {
		return 0, 0, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return 0, 0, false
	}
	lon, err = strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return 0, 0, false
	}
	return lat, lon, true
}

// DefaultStations - стартовый реестр участков Калькутты
func DefaultStations() []models.Station {
	return []models.Station{
		{Name: "Behala Police Station", Latitude: 22.4865, Longitude: 88.3136},
		{Name: "Behala Police Station", Latitude: 22.4843, Longitude: 88.3399},
		{Name: "Serampore Police Station", Latitude: 22.7100, Longitude: 88.3200},
		{Name: "Anandapur Police Station", Latitude: 22.516525, Longitude: 88.418213},
		{Name: "Burra Bazar Police Station", Latitude: 22.5667, Longitude: 88.3475},
	}
}

// LoadStations читает реестр из JSON-файла; пустой путь означает реестр по умолчанию
func LoadStations(path string) ([]models.Station, error) {
	if path == "" {
		return DefaultStations(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stations file: %w", err)
	}

	var stations []models.Station
	if err := json.Unmarshal(data, &stations); err != nil {
		return nil, fmt.Errorf("failed to parse stations file: %w", err)
	}
	if len(stations) == 0 {
		return nil, ErrNoStations
	}
	return stations, nil
}
