package db

import (
	"testing"

	"food-app/config"
)

func TestConnString(t *testing.T) {
	got := ConnString(config.DBConfig{Host: "db", Port: 5433, User: "app", Password: "p@ss/word", Database: "foodapp"})
	want := "postgres://app:p%40ss%2Fword@db:5433/foodapp"
	if got != want {
		t.Errorf("ConnString = %q, want %q", got, want)
	}
}
