package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/saadjs/fittrack/internal/api"
)

type FoodInput struct {
	Name     string
	Calories float64
	Date     string
	Now      time.Time
}

func PrepareFood(in FoodInput) (api.NewFood, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return api.NewFood{}, fmt.Errorf("food name is required")
	}
	if err := validateNonNegativeFloat("calories", in.Calories); err != nil {
		return api.NewFood{}, err
	}
	date, err := normalizeDate(in.Date, in.Now)
	if err != nil {
		return api.NewFood{}, err
	}
	return api.NewFood{Name: name, Calories: in.Calories, Date: date}, nil
}
