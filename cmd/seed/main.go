package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/sysu-ecnc-dev/scrum-master/backend/internal/config"
	"github.com/sysu-ecnc-dev/scrum-master/backend/internal/repository"
	"github.com/sysu-ecnc-dev/scrum-master/backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var rulesPerMember int

	flag.IntVar(&op, "op", 0, "要执行的操作 (1: 插入随机成员, 2: 插入随机请假记录, 3: 插入随机节假日, 4: 插入完整演示数据)")
	flag.IntVar(&n, "n", 8, "要插入的记录数量")
	flag.IntVar(&rulesPerMember, "rules-per-member", 2, "每个成员的请假记录数量")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 创建数据库连接池
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("无法创建数据库连接池", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open 只是创建数据库连接池对象，并不会立即连接到数据库，因此需要显式地 ping 一下
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("无法连接到数据库", "error", err)
		return
	}

	// 创建 repository
	repo := repository.NewRepository(cfg, dbpool)

	// 执行操作
	switch op {
	case 0:
		slog.Error("未指定操作")
	case 1:
		if n <= 0 {
			slog.Error("请输入合法的成员数量")
		} else {
			seed.SeedTeamMembers(repo, n)
		}
	case 2:
		memberIDs, err := memberIDsFromDB(repo)
		if err != nil {
			slog.Error("无法获取成员列表", "error", err)
			return
		}
		seed.SeedDayRules(repo, memberIDs, rulesPerMember)
	case 3:
		seed.SeedHolidays(repo, n)
	case 4:
		memberIDs := seed.SeedTeamMembers(repo, n)
		seed.SeedDayRules(repo, memberIDs, rulesPerMember)
		seed.SeedHolidays(repo, 3)
	default:
		slog.Error("不支持的操作", "op", op)
	}
}

func memberIDsFromDB(repo *repository.Repository) ([]string, error) {
	members, err := repo.GetAllTeamMembers()
	if err != nil {
		return nil, err
	}

	memberIDs := make([]string, 0, len(members))
	for _, member := range members {
		memberIDs = append(memberIDs, member.MemberID)
	}
	return memberIDs, nil
}
