package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/scrum-master/backend/internal/domain"
)

func (r *Repository) CreateDayRule(rule *domain.DayRuleRecord) error {
	query := `
		INSERT INTO day_rules (member_id, type, start_date, end_date, approved, reason)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{rule.MemberID, rule.Type, rule.Start.String(), rule.End.String(), rule.Approved, rule.Reason}
	if _, err := r.dbpool.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllDayRules() ([]domain.DayRuleRecord, error) {
	query := `
		SELECT member_id, type, start_date, end_date, approved, reason
		FROM day_rules
		ORDER BY start_date
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rules := make([]domain.DayRuleRecord, 0)
	for rows.Next() {
		var rule domain.DayRuleRecord
		var start, end time.Time
		dst := []any{&rule.MemberID, &rule.Type, &start, &end, &rule.Approved, &rule.Reason}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		rule.Start = domain.DateOf(start)
		rule.End = domain.DateOf(end)
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rules, nil
}
