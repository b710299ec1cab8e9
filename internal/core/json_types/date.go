package json_types

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pastoraldigital/mass-schedule-manager/internal/core/domain"
	"github.com/pastoraldigital/mass-schedule-manager/internal/utils"
)

// Date marshals as dd/mm/yyyy, the format every key and document uses.
// ISO dates are accepted on the way in.
type Date struct {
	Date time.Time
}

func (t *Date) UnmarshalJSON(data []byte) error {
	// Strip the surrounding quotes
	if len(data) < 2 {
		return fmt.Errorf("invalid date value: %s", string(data))
	}
	str := string(data[1 : len(data)-1])

	parsedDate, err := utils.ParseDate(str)
	if err != nil {
		return err
	}

	*t = Date{Date: parsedDate}
	return nil
}

func (t Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Date.Format(domain.KeyDateLayout))
}
