package main

import (
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebi "github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputGroupId distinguishes repeat states of widgets
// that listen to the same button.
type InputGroupId int64

var inputGroupIdMax InputGroupId

func NewInputGroupId() InputGroupId {
	inputGroupIdMax++
	return inputGroupIdMax
}

func IsMouseButtonPressed(button eb.MouseButton) bool {
	return eb.IsMouseButtonPressed(button)
}

func IsMouseButtonJustPressed(button eb.MouseButton) bool {
	return ebi.IsMouseButtonJustPressed(button)
}

func IsMouseButtonJustReleased(button eb.MouseButton) bool {
	return ebi.IsMouseButtonJustReleased(button)
}

var mouseButtonRepeatMap = make(
	map[struct {
		Id     InputGroupId
		Button eb.MouseButton
	}]time.Duration,
)

func HandleMouseButtonRepeat(
	inputId InputGroupId,
	rect FRectangle,
	firstRate, repeatRate time.Duration,
	button eb.MouseButton,
) bool {
	idAndButton := struct {
		Id     InputGroupId
		Button eb.MouseButton
	}{
		Id:     inputId,
		Button: button,
	}

	cursor := CursorFPt()

	if !IsMouseButtonPressed(button) || !cursor.In(rect) {
		mouseButtonRepeatMap[idAndButton] = 0
		return false
	}

	if IsMouseButtonJustPressed(button) {
		mouseButtonRepeatMap[idAndButton] = GlobalTimerNow() + firstRate
		return true
	}

	time, ok := mouseButtonRepeatMap[idAndButton]

	if !ok {
		mouseButtonRepeatMap[idAndButton] = GlobalTimerNow() + firstRate
		return true
	} else {
		now := GlobalTimerNow()
		if now-time > repeatRate {
			mouseButtonRepeatMap[idAndButton] = now
			return true
		}
	}

	return false
}

func IsKeyPressed(key eb.Key) bool {
	return eb.IsKeyPressed(key)
}

func IsKeyJustPressed(key eb.Key) bool {
	return ebi.IsKeyJustPressed(key)
}

var keyRepeatMap = make(map[eb.Key]time.Duration)

func HandleKeyRepeat(
	firstRate, repeatRate time.Duration,
	key eb.Key,
) bool {
	if !IsKeyPressed(key) {
		keyRepeatMap[key] = 0
		return false
	}

	if IsKeyJustPressed(key) {
		keyRepeatMap[key] = GlobalTimerNow() + firstRate
		return true
	}

	time, ok := keyRepeatMap[key]

	if !ok {
		keyRepeatMap[key] = GlobalTimerNow() + firstRate
		return true
	} else {
		now := GlobalTimerNow()
		if now-time > repeatRate {
			keyRepeatMap[key] = now
			return true
		}
	}

	return false
}
