package db

import (
	"errors"
	"strings"
	"testing"

	"lendhub-backend/internal/config"
	"lendhub-backend/internal/domain/activity"
	"lendhub-backend/internal/domain/lead"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestOpenGormWithDialector_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer sqlDB.Close()

	// Expect a Ping from our code
	mock.ExpectPing()

	dial := mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true, // don't query @@version
	})

	gdb, err := OpenGormWithDialector(dial)
	if err != nil {
		t.Fatalf("OpenGormWithDialector error: %v", err)
	}
	if gdb == nil {
		t.Fatalf("got nil gorm.DB")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOpenGormWithDialector_PingFails(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer sqlDB.Close()

	mock.ExpectPing().WillReturnError(errors.New("no ping"))

	dial := mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	})

	gdb, err := OpenGormWithDialector(dial)
	if err == nil {
		t.Fatalf("expected error, got nil (gdb=%v)", gdb)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDialector_PicksDriver(t *testing.T) {
	cases := map[string]string{
		config.DriverMySQL:    "mysql",
		config.DriverPostgres: "postgres",
		config.DriverSQLite:   "sqlite",
	}
	for driver, want := range cases {
		cfg := &config.Config{
			DBDriver: driver, MySQLHost: "h", MySQLPort: "3306", MySQLDB: "d", MySQLUser: "u",
			DatabaseURL: "postgres://u:p@h:5432/d", SQLitePath: "x.db",
		}
		dial, err := Dialector(cfg)
		if err != nil {
			t.Fatalf("Dialector(%s): %v", driver, err)
		}
		if dial.Name() != want {
			t.Fatalf("Dialector(%s).Name() = %s, want %s", driver, dial.Name(), want)
		}
	}
	if _, err := Dialector(&config.Config{DBDriver: "oracle"}); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestMigrate_CreatesTables(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := gdb.DB()
	sqlDB.SetMaxOpenConns(1)
	defer sqlDB.Close()

	if err := Migrate(gdb); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	for _, table := range []string{"lenders", "leads", "lead_activities"} {
		if !gdb.Migrator().HasTable(table) {
			t.Fatalf("table %s missing", table)
		}
	}
}

func TestDialector_MySQLMicrosecondDatetime(t *testing.T) {
	cfg := &config.Config{DBDriver: config.DriverMySQL, MySQLHost: "h", MySQLPort: "3306", MySQLDB: "d", MySQLUser: "u"}
	dial, err := Dialector(cfg)
	if err != nil {
		t.Fatalf("Dialector: %v", err)
	}
	md, ok := dial.(*mysql.Dialector)
	if !ok {
		t.Fatalf("dialector type = %T", dial)
	}
	if md.DefaultDatetimePrecision == nil || *md.DefaultDatetimePrecision != 6 {
		t.Fatalf("DefaultDatetimePrecision = %v, want 6", md.DefaultDatetimePrecision)
	}
}

func TestSchema_MySQLTimestampColumnsKeepMicroseconds(t *testing.T) {
	sqlDB, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer sqlDB.Close()

	// plain dialector: the column tags alone must ask for datetime(6)
	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{DisableAutomaticPing: true})
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	checks := []struct {
		model   any
		columns []string
	}{
		{&lead.Lead{}, []string{"created_at", "updated_at"}},
		{&activity.Activity{}, []string{"created_at"}},
	}
	for _, c := range checks {
		stmt := &gorm.Statement{DB: gdb}
		if err := stmt.Parse(c.model); err != nil {
			t.Fatalf("parse %T: %v", c.model, err)
		}
		for _, col := range c.columns {
			f := stmt.Schema.LookUpField(col)
			if f == nil {
				t.Fatalf("%s.%s not found", stmt.Schema.Table, col)
			}
			got := gdb.Migrator().FullDataTypeOf(f).SQL
			if !strings.HasPrefix(got, "datetime(6)") {
				t.Fatalf("%s.%s type = %q, want datetime(6)", stmt.Schema.Table, col, got)
			}
		}
	}
}
