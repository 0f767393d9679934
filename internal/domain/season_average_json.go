package domain

import (
	"fmt"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// UnmarshalJSON reads a flat upstream record such as
// {"games_played":70,"player_id":237,"season":2022,"min":"35:16","pts":28.9}
// keeping key order.
func (a *SeasonAverage) UnmarshalJSON(data []byte) error {
	iter := json.BorrowIterator(data)
	defer json.ReturnIterator(iter)

	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		return nil
	case jsoniter.ObjectValue:
	default:
		return fmt.Errorf("season average: expected object")
	}

	var out SeasonAverage
	var fieldErr error
	complete := iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
		raw := string(it.SkipAndReturnBytes())
		if it.Error != nil {
			return false
		}
		switch key {
		case "player_id":
			out.PlayerID, fieldErr = strconv.Atoi(raw)
		case "season":
			out.Season, fieldErr = strconv.Atoi(raw)
		}
		if fieldErr != nil {
			fieldErr = fmt.Errorf("season average: field %q: %w", key, fieldErr)
			return false
		}
		out.Stats = append(out.Stats, Stat{Key: key, Value: raw})
		return true
	})
	if fieldErr != nil {
		return fieldErr
	}
	if !complete {
		if iter.Error != nil {
			return fmt.Errorf("season average: %w", iter.Error)
		}
		return fmt.Errorf("season average: incomplete object")
	}

	*a = out
	return nil
}

func (a SeasonAverage) MarshalJSON() ([]byte, error) {
	stream := json.BorrowStream(nil)
	defer json.ReturnStream(stream)

	first := true
	field := func(key, raw string) {
		if !first {
			stream.WriteMore()
		}
		first = false
		stream.WriteObjectField(key)
		stream.WriteRaw(raw)
	}

	stream.WriteObjectStart()
	if _, ok := a.Lookup("player_id"); !ok {
		field("player_id", strconv.Itoa(a.PlayerID))
	}
	if _, ok := a.Lookup("season"); !ok {
		field("season", strconv.Itoa(a.Season))
	}
	for _, s := range a.Stats {
		field(s.Key, s.Value)
	}
	stream.WriteObjectEnd()

	if stream.Error != nil {
		return nil, stream.Error
	}
	return append([]byte(nil), stream.Buffer()...), nil
}
