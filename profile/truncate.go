// profile/truncate.go
// Copyright(c) 2025 jetfuelburn contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package profile

import (
	"fmt"

	"github.com/sustainableaviation/jetfuelburn/units"
)

// TruncateByCruiseAltitude computes each segment's elapsed time and covered
// distance and shortens the sequence to the target cruise altitude: the
// segment containing the target has its top clipped to it and its time and
// distance computed from the partial altitude span; segments above it are
// dropped. The input sequence is not modified.
//
// When the target equals or exceeds the sequence ceiling, every segment is
// retained at full extent, so summed distance is conserved at the natural
// endpoint.
func TruncateByCruiseAltitude(target units.Length, segs SegmentSeq) (SegmentSeq, error) {
	if ft := target.Feet(); ft < 0 || ft > 55000 {
		return nil, fmt.Errorf("%w: %.0f ft", ErrCruiseAltitudeOutOfRange, ft)
	}
	if err := segs.checkAscending(); err != nil {
		return nil, err
	}

	out := make(SegmentSeq, 0, len(segs))
	for _, seg := range segs {
		if target <= seg.AltTop {
			seg.Time = units.Minutes((target - seg.AltBottom).Feet() / seg.Rate.FeetPerMinute())
			seg.Distance = seg.GroundSpeed.Times(seg.Time)
			seg.AltTop = target
			out = append(out, seg)
			break
		}
		seg.Time = units.Minutes((seg.AltTop - seg.AltBottom).Feet() / seg.Rate.FeetPerMinute())
		seg.Distance = seg.GroundSpeed.Times(seg.Time)
		out = append(out, seg)
	}
	return out, nil
}

// TruncateByDistance shortens a sequence whose times and distances have
// already been computed (by TruncateByCruiseAltitude) to a ground-distance
// budget. The segment the budget runs out in has its distance reduced to the
// remainder, its time recomputed from distance over ground speed, and its
// top altitude recomputed from the shortened time; segments beyond it are
// dropped. The input sequence is not modified.
func TruncateByDistance(target units.Length, segs SegmentSeq) (SegmentSeq, error) {
	if err := segs.checkAscending(); err != nil {
		return nil, err
	}

	var cumulative units.Length
	out := make(SegmentSeq, 0, len(segs))
	for _, seg := range segs {
		if seg.Distance == 0 {
			// Distance-based truncation presumes the altitude-based pass ran
			// first; a zero-extent segment mid-walk is a data integrity
			// violation, not a segment to skip.
			return nil, fmt.Errorf("%w: %q", ErrZeroSegmentDistance, seg.Name)
		}
		start := cumulative
		cumulative += seg.Distance
		switch {
		case target > cumulative:
			out = append(out, seg)
		case target > start:
			seg.Distance = target - start
			seg.Time = units.Minutes(seg.Distance.Kilometers() * 60 / seg.GroundSpeed.KilometersPerHour())
			seg.AltTop = seg.AltBottom + units.Feet(seg.Rate.FeetPerMinute()*seg.Time.Minutes())
			out = append(out, seg)
		}
	}
	return out, nil
}
