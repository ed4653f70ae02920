package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/scrum-master/backend/internal/domain"
)

func (r *Repository) CreateHoliday(holiday *domain.HolidayRecord) error {
	query := `
		INSERT INTO holidays (date, name, country)
		VALUES ($1, $2, $3)
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, holiday.Date.String(), holiday.Name, holiday.Country); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllHolidays() ([]domain.HolidayRecord, error) {
	query := `
		SELECT date, name, country FROM holidays ORDER BY date
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holidays := make([]domain.HolidayRecord, 0)
	for rows.Next() {
		var holiday domain.HolidayRecord
		var date time.Time
		if err := rows.Scan(&date, &holiday.Name, &holiday.Country); err != nil {
			return nil, err
		}
		holiday.Date = domain.DateOf(date)
		holidays = append(holidays, holiday)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return holidays, nil
}

// LoadSnapshot 把三张表组装成引擎消费的快照
func (r *Repository) LoadSnapshot() (*domain.Snapshot, error) {
	teamMembers, err := r.GetAllTeamMembers()
	if err != nil {
		return nil, err
	}

	dayRules, err := r.GetAllDayRules()
	if err != nil {
		return nil, err
	}

	holidays, err := r.GetAllHolidays()
	if err != nil {
		return nil, err
	}

	return &domain.Snapshot{
		TeamMembers: teamMembers,
		DayRules:    dayRules,
		Holidays:    holidays,
	}, nil
}
