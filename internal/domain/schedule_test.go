package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRules возвращает правила по умолчанию: Пн-Пт 09:00-18:00 UTC,
// слот 30 минут, lead time 24 часа
func testRules() ScheduleRules {
	return ScheduleRules{
		OpenHour:  9,
		CloseHour: 18,
		Weekdays: map[time.Weekday]bool{
			time.Monday: true, time.Tuesday: true, time.Wednesday: true,
			time.Thursday: true, time.Friday: true,
		},
		SlotDuration: 30 * time.Minute,
		MinLeadTime:  24 * time.Hour,
		Location:     time.UTC,
	}
}

// 2026-03-11 - среда
var wednesday = time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

func TestScheduleRules_Validate(t *testing.T) {
	require.NoError(t, testRules().Validate())

	noLocation := testRules()
	noLocation.Location = nil
	assert.Error(t, noLocation.Validate())

	zeroDuration := testRules()
	zeroDuration.SlotDuration = 0
	assert.Error(t, zeroDuration.Validate())

	inverted := testRules()
	inverted.OpenHour = 18
	inverted.CloseHour = 9
	assert.Error(t, inverted.Validate())

	noDays := testRules()
	noDays.Weekdays = nil
	assert.Error(t, noDays.Validate())
}

func TestScheduleRules_SlotsForDay(t *testing.T) {
	rules := testRules()

	slots := rules.SlotsForDay(wednesday)
	require.Len(t, slots, 18)

	// Первый и последний слоты окна 09:00-18:00
	assert.Equal(t, wednesday.Add(9*time.Hour), slots[0].Start)
	assert.Equal(t, wednesday.Add(9*time.Hour+30*time.Minute), slots[0].End)
	assert.Equal(t, wednesday.Add(17*time.Hour+30*time.Minute), slots[17].Start)
	assert.Equal(t, wednesday.Add(18*time.Hour), slots[17].End)

	// Слоты смежные: конец каждого равен началу следующего
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].End.Equal(slots[i].Start), "slots must be contiguous")
	}
}

func TestScheduleRules_SlotsForDay_ExcludedWeekday(t *testing.T) {
	rules := testRules()

	saturday := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, rules.SlotsForDay(saturday))
	assert.Empty(t, rules.SlotsForDay(sunday))
}

func TestScheduleRules_SlotsForDay_NoTrailingPartialSlot(t *testing.T) {
	rules := testRules()
	rules.CloseHour = 17
	rules.CloseMinute = 45

	slots := rules.SlotsForDay(wednesday)
	require.NotEmpty(t, slots)

	// Окно 09:00-17:45 не делится на 30 минут нацело: последний полный
	// слот заканчивается в 17:30, частичного хвоста нет
	last := slots[len(slots)-1]
	assert.Equal(t, wednesday.Add(17*time.Hour+30*time.Minute), last.End)
	assert.Len(t, slots, 17)
}

func TestScheduleRules_IsLeadTimeSatisfied(t *testing.T) {
	rules := testRules()
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	// Ровно 24 часа - допустимо
	assert.True(t, rules.IsLeadTimeSatisfied(now.Add(24*time.Hour), now))
	assert.True(t, rules.IsLeadTimeSatisfied(now.Add(48*time.Hour), now))

	// Меньше 24 часов - нет
	assert.False(t, rules.IsLeadTimeSatisfied(now.Add(20*time.Hour), now))
	assert.False(t, rules.IsLeadTimeSatisfied(now.Add(24*time.Hour-time.Minute), now))
	assert.False(t, rules.IsLeadTimeSatisfied(now.Add(-time.Hour), now))
}

func TestScheduleRules_IsWithinWorkingWindow(t *testing.T) {
	rules := testRules()

	// Внутри окна
	assert.True(t, rules.IsWithinWorkingWindow(NewTimeSlot(wednesday.Add(10*time.Hour), 30*time.Minute)))

	// Граничные слоты окна допустимы
	assert.True(t, rules.IsWithinWorkingWindow(NewTimeSlot(wednesday.Add(9*time.Hour), 30*time.Minute)))
	assert.True(t, rules.IsWithinWorkingWindow(NewTimeSlot(wednesday.Add(17*time.Hour+30*time.Minute), 30*time.Minute)))

	// До открытия и после закрытия
	assert.False(t, rules.IsWithinWorkingWindow(NewTimeSlot(wednesday.Add(8*time.Hour+30*time.Minute), 30*time.Minute)))
	assert.False(t, rules.IsWithinWorkingWindow(NewTimeSlot(wednesday.Add(17*time.Hour+45*time.Minute), 30*time.Minute)))

	// Запрещенный день недели
	saturday := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	assert.False(t, rules.IsWithinWorkingWindow(NewTimeSlot(saturday, 30*time.Minute)))
}

func TestScheduleRules_HasCorrectDuration(t *testing.T) {
	rules := testRules()
	start := wednesday.Add(10 * time.Hour)

	assert.True(t, rules.HasCorrectDuration(NewTimeSlot(start, 30*time.Minute)))
	assert.False(t, rules.HasCorrectDuration(NewTimeSlot(start, 45*time.Minute)))
	assert.False(t, rules.HasCorrectDuration(NewTimeSlot(start, 29*time.Minute)))
}

func TestScheduleRules_WorkingWindowFor_Timezone(t *testing.T) {
	loc, err := time.LoadLocation("America/Toronto")
	require.NoError(t, err)

	rules := testRules()
	rules.Location = loc

	// Дата передана в UTC, окно все равно считается в Торонто
	open, close := rules.WorkingWindowFor(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 9, open.In(loc).Hour())
	assert.Equal(t, 18, close.In(loc).Hour())
}
