package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/scrum-master/backend/internal/domain"
)

func (r *Repository) CreateTeamMember(member *domain.TeamMemberRecord) error {
	query := `
		INSERT INTO team_members (member_id, name, short_name, status, peek_order, day_backup, backup_members, fixed_day, country)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{
		member.MemberID,
		member.Name,
		member.ShortName,
		member.Status,
		member.PeekOrder.Int(),
		member.DayBackup,
		member.BackupMembers,
		member.FixedDay.Int(),
		member.Country,
	}
	if _, err := r.dbpool.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllTeamMembers() ([]domain.TeamMemberRecord, error) {
	query := `
		SELECT member_id, name, short_name, status, peek_order, day_backup, backup_members, fixed_day, country
		FROM team_members
		ORDER BY peek_order
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]domain.TeamMemberRecord, 0)
	for rows.Next() {
		var member domain.TeamMemberRecord
		var peekOrder, fixedDay int
		dst := []any{&member.MemberID, &member.Name, &member.ShortName, &member.Status, &peekOrder, &member.DayBackup, &member.BackupMembers, &fixedDay, &member.Country}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		member.PeekOrder = domain.FlexInt(peekOrder)
		member.FixedDay = domain.FlexInt(fixedDay)
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}

func (r *Repository) DeleteTeamMember(memberID string) error {
	query := `
		DELETE FROM team_members WHERE member_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, memberID)
	if err != nil {
		return err
	}

	return nil
}
