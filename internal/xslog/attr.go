package xslog

import (
	"log/slog"
	"time"
)

func Error(err error) slog.Attr {
	const errorKey = "error"
	return slog.String(errorKey, err.Error())
}

func Date(day time.Time) slog.Attr {
	const dateKey = "date"
	return slog.String(dateKey, day.Format(time.DateOnly))
}

func Preset(name string) slog.Attr {
	const presetKey = "preset"
	return slog.String(presetKey, name)
}

func Score(score float64) slog.Attr {
	const scoreKey = "score"
	return slog.Float64(scoreKey, score)
}

func Calories(kcal float64) slog.Attr {
	const caloriesKey = "calories_kcal"
	return slog.Float64(caloriesKey, kcal)
}

func ExerciseMinutes(minutes float64) slog.Attr {
	const minutesKey = "exercise_minutes"
	return slog.Float64(minutesKey, minutes)
}

func StandHours(hours int) slog.Attr {
	const standKey = "stand_hours"
	return slog.Int(standKey, hours)
}

func Count(count int) slog.Attr {
	const countKey = "count"
	return slog.Int(countKey, count)
}

func Days(days int) slog.Attr {
	const daysKey = "days"
	return slog.Int(daysKey, days)
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func Path(path string) slog.Attr {
	const pathKey = "path"
	return slog.String(pathKey, path)
}
