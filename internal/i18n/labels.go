package i18n

import "time"

var weekdayKeys = [7]string{
	"weekday.sun",
	"weekday.mon",
	"weekday.tue",
	"weekday.wed",
	"weekday.thu",
	"weekday.fri",
	"weekday.sat",
}

var monthKeys = [12]string{
	"month.jan",
	"month.feb",
	"month.mar",
	"month.apr",
	"month.may",
	"month.jun",
	"month.jul",
	"month.aug",
	"month.sep",
	"month.oct",
	"month.nov",
	"month.dec",
}

func (m *Manager) WeekdayShort(language string, day time.Weekday) string {
	return m.T(language, weekdayKeys[day], nil)
}

func (m *Manager) MonthShort(language string, month time.Month) string {
	return m.T(language, monthKeys[month-1], nil)
}
