package sim

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/clktmr/agbrtc/drivers/carts/ezflash"
	"github.com/clktmr/agbrtc/drivers/rtc"
	"gopkg.in/yaml.v3"
)

var ErrInvalidScenario = errors.New("invalid scenario")

// DateTimeLayout is the layout of RTCConfig.DateTime.
const DateTimeLayout = "2006-01-02 15:04:05"

// Scenario describes the cartridge in the slot at startup.
type Scenario struct {
	// Empty leaves the slot empty, all other fields are ignored.
	Empty    bool           `yaml:"empty"`
	Title    string         `yaml:"title"`
	Checksum uint16         `yaml:"checksum"`
	RTC      *RTCConfig     `yaml:"rtc"`
	EZFlash  *EZFlashConfig `yaml:"ezflash"`
}

type RTCConfig struct {
	Absent             bool   `yaml:"absent"`
	RejectStatusWrites bool   `yaml:"reject_status_writes"`
	Status             *uint8 `yaml:"status"`
	// DateTime uses DateTimeLayout. Empty keeps the factory contents.
	DateTime string `yaml:"datetime"`
	// Weekday defaults to the calendar weekday of DateTime.
	Weekday *int `yaml:"weekday"`
	// Raw sets the seven date and time registers directly.
	Raw []uint8 `yaml:"raw"`
}

type EZFlashConfig struct {
	// Running is the page the game was started from, the bootloader if
	// unset.
	Running *uint16 `yaml:"running"`
	// Pages maps page numbers to the header checksum of their image.
	Pages map[uint16]uint16 `yaml:"pages"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes and validates a YAML scenario.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidScenario, fmt.Sprintf(format, args...))
}

// Validate checks the scenario without changing it.
func (s *Scenario) Validate() error {
	if len(s.Title) > titleLen {
		return invalid("title %q longer than %d bytes", s.Title, titleLen)
	}
	for i := 0; i < len(s.Title); i++ {
		if s.Title[i] > 0x7f {
			return invalid("title %q must be ASCII", s.Title)
		}
	}

	if c := s.RTC; c != nil {
		if c.DateTime != "" && c.Raw != nil {
			return invalid("rtc: datetime and raw are exclusive")
		}
		if c.Raw != nil && len(c.Raw) != 7 {
			return invalid("rtc: raw needs 7 bytes, got %d", len(c.Raw))
		}
		if c.DateTime != "" {
			t, err := time.Parse(DateTimeLayout, c.DateTime)
			if err != nil {
				return invalid("rtc: %v", err)
			}
			if t.Year() < 2000 || t.Year() > 2099 {
				return invalid("rtc: year %d out of range 2000-2099", t.Year())
			}
		}
		if c.Weekday != nil && (*c.Weekday < 0 || *c.Weekday > 6) {
			return invalid("rtc: weekday %d out of range 0-6", *c.Weekday)
		}
	}

	if f := s.EZFlash; f != nil {
		for page := range f.Pages {
			if !validPage(page) {
				return invalid("ezflash: no page %#x", page)
			}
		}
		if f.Running != nil && !validPage(*f.Running) {
			return invalid("ezflash: no page %#x", *f.Running)
		}
	}
	return nil
}

func validPage(page uint16) bool {
	switch page {
	case ezflash.PageBootloader, ezflash.PagePSRAM, ezflash.PageKernel:
		return true
	}
	return page < ezflash.FlashPages
}

// Build returns the described cartridge, nil for an empty slot.
func (s *Scenario) Build() *Cartridge {
	if s.Empty {
		return nil
	}
	cart := &Cartridge{Title: s.Title, Checksum: s.Checksum, Chip: NewChip()}
	if c := s.RTC; c != nil {
		cart.Chip.Present = !c.Absent
		cart.Chip.RejectStatusWrites = c.RejectStatusWrites
		if c.Status != nil {
			cart.Chip.Status = *c.Status
		}
		switch {
		case c.Raw != nil:
			copy(cart.Chip.DateTime[:], c.Raw)
		case c.DateTime != "":
			t, _ := time.Parse(DateTimeLayout, c.DateTime)
			dt := rtc.DateTime{
				Year: t.Year() - 2000, Month: int(t.Month()), Day: t.Day(),
				Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(),
				Afternoon: t.Hour() >= 12,
			}
			dt.Weekday = dt.CalendarWeekday()
			if c.Weekday != nil {
				dt.Weekday = *c.Weekday
			}
			cart.Chip.DateTime = dt.Encode(rtc.Status(cart.Chip.Status).Is24h())
		}
	}
	if f := s.EZFlash; f != nil {
		cart.Flash = &FlashCart{
			Pages:  make(map[uint16]uint16, len(f.Pages)),
			Mapped: ezflash.PageBootloader,
		}
		for page, sum := range f.Pages {
			cart.Flash.Pages[page] = sum
		}
		if f.Running != nil {
			cart.Flash.Mapped = *f.Running
		}
		cart.Flash.Kernel = cart.Flash.Mapped == ezflash.PageKernel
	}
	return cart
}
