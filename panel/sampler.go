// Copyright 2026 Buildstock Contributors
// This file is part of Panelsampler, an electrical panel sampler for building stock models
//
// Panelsampler is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Panelsampler is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Panelsampler. If not, see <http://www.gnu.org/licenses/>.

// Package panel assigns electrical panel properties to buildings by drawing
// from probability tables keyed on categorical building attributes.
package panel

import (
	"fmt"

	"github.com/buildstock/panelsampler/diag"
	"github.com/buildstock/panelsampler/statistics/discrete"
	"github.com/buildstock/panelsampler/table"
	"github.com/cockroachdb/errors"
)

// Source tells where an assigned value comes from.
type Source string

const (
	Sampled       Source = "sampled"
	UserSpecified Source = "user"
)

// Outcome is one draw from a probability table.
type Outcome struct {
	Label string  // outcome label of the table
	Index int     // position of the label in the table header
	Value float64 // numeric translation of the label
}

// Assignment holds the panel properties of one building.
type Assignment struct {
	BuildingID            int64
	CapacityBin           string
	CapacityAmps          float64
	CapacitySource        Source
	BreakerSpacesHeadroom int
	HeadroomSource        Source
}

// Sampler draws rated panel capacity and breaker space headroom. It only
// reads its tables and is safe for concurrent use.
type Sampler struct {
	capacity    *table.Table
	headroom    *table.Table
	capacityCtx contextBuilder
	headroomCtx contextBuilder
	reporter    diag.Reporter
}

// NewSampler validates the tables and creates a sampler. Errors of later
// sampling calls are reported to reporter; nil discards them.
func NewSampler(capacity, headroom *table.Table, reporter diag.Reporter) (*Sampler, error) {
	if capacity == nil || headroom == nil {
		return nil, errors.New("both the rated capacity and the breaker space headroom table are required")
	}
	if reporter == nil {
		reporter = diag.Discard
	}

	capacityCtx, err := newContextBuilder(capacity.KeyFields, false)
	if err != nil {
		return nil, &table.ConfigurationError{Source: capacity.Source, Line: 1, Reason: err.Error()}
	}
	headroomCtx, err := newContextBuilder(headroom.KeyFields, true)
	if err != nil {
		return nil, &table.ConfigurationError{Source: headroom.Source, Line: 1, Reason: err.Error()}
	}
	for _, label := range capacity.Labels {
		if !isCapacityBin(label) {
			if _, err := parseNumber(label); err != nil {
				return nil, &table.ConfigurationError{Source: capacity.Source, Line: 1, Reason: err.Error()}
			}
		}
	}
	for _, label := range headroom.Labels {
		if _, err := HeadroomToValue(label); err != nil {
			return nil, &table.ConfigurationError{Source: headroom.Source, Line: 1, Reason: err.Error()}
		}
	}

	for _, t := range []*table.Table{capacity, headroom} {
		for _, key := range t.Duplicates() {
			reporter.Warning(diag.NoBuilding, fmt.Sprintf("%s: key %q occurs in several rows, the first row is used", t.Source, key))
		}
	}

	return &Sampler{
		capacity:    capacity,
		headroom:    headroom,
		capacityCtx: capacityCtx,
		headroomCtx: headroomCtx,
		reporter:    reporter,
	}, nil
}

func isCapacityBin(label string) bool {
	switch label {
	case CapacityBelow100, Capacity101To124, Capacity126To199, CapacityAbove200:
		return true
	}
	return false
}

// SampleCapacity draws the rated capacity bin of a building and translates
// it into amps.
func (s *Sampler) SampleCapacity(rng discrete.RandomStream, b *Building) (Outcome, error) {
	o, err := s.sampleCapacity(rng, b)
	if err != nil {
		s.reporter.Error(b.ID, err)
	}
	return o, err
}

// SampleHeadroom draws the breaker space headroom of a building with the
// given capacity bin.
func (s *Sampler) SampleHeadroom(rng discrete.RandomStream, b *Building, capacityBin string) (Outcome, error) {
	o, err := s.sampleHeadroom(rng, b, capacityBin)
	if err != nil {
		s.reporter.Error(b.ID, err)
	}
	return o, err
}

// Assign draws capacity and then headroom from a stream seeded with the
// building id. User supplied values replace the respective draw. The same
// building and tables always produce the same assignment.
func (s *Sampler) Assign(b *Building) (Assignment, error) {
	a, err := s.assign(b)
	if err != nil {
		s.reporter.Error(b.ID, err)
	}
	return a, err
}

func (s *Sampler) assign(b *Building) (Assignment, error) {
	a := Assignment{BuildingID: b.ID}
	rng := discrete.NewStream(b.ID)

	amps, userRating, err := b.serviceRatingOverride()
	if err != nil {
		return a, errors.Wrap(err, "electric panel service rating")
	}
	if userRating {
		a.CapacityBin = CapacityBinForAmps(amps)
		a.CapacityAmps = amps
		a.CapacitySource = UserSpecified
		s.reporter.Info(b.ID, fmt.Sprintf("using specified service rating of %v A", amps))
	} else {
		o, err := s.sampleCapacity(rng, b)
		if err != nil {
			return a, err
		}
		a.CapacityBin = o.Label
		a.CapacityAmps = o.Value
		a.CapacitySource = Sampled
	}

	spaces, userHeadroom, err := b.headroomOverride()
	if err != nil {
		return a, errors.Wrap(err, "electric panel breaker spaces headroom")
	}
	if userHeadroom {
		a.BreakerSpacesHeadroom = spaces
		a.HeadroomSource = UserSpecified
		s.reporter.Info(b.ID, fmt.Sprintf("using specified breaker space headroom of %d", spaces))
		return a, nil
	}
	o, err := s.sampleHeadroom(rng, b, a.CapacityBin)
	if err != nil {
		return a, err
	}
	a.BreakerSpacesHeadroom = int(o.Value)
	a.HeadroomSource = Sampled
	return a, nil
}

func (s *Sampler) sampleCapacity(rng discrete.RandomStream, b *Building) (Outcome, error) {
	ctx, err := s.capacityCtx.build(b, "")
	if err != nil {
		return Outcome{}, errors.Wrap(err, "rated capacity")
	}
	o, err := draw(rng, s.capacity, ctx)
	if err != nil {
		return Outcome{}, errors.Wrap(err, "rated capacity")
	}
	tc, err := translationContext(b, o.Label)
	if err != nil {
		return Outcome{}, errors.Wrap(err, "rated capacity")
	}
	if o.Value, err = BucketToValue(o.Label, tc); err != nil {
		return Outcome{}, errors.Wrap(err, "rated capacity")
	}
	return o, nil
}

func (s *Sampler) sampleHeadroom(rng discrete.RandomStream, b *Building, capacityBin string) (Outcome, error) {
	ctx, err := s.headroomCtx.build(b, capacityBin)
	if err != nil {
		return Outcome{}, errors.Wrap(err, "breaker space headroom")
	}
	o, err := draw(rng, s.headroom, ctx)
	if err != nil {
		return Outcome{}, errors.Wrap(err, "breaker space headroom")
	}
	n, err := HeadroomToValue(o.Label)
	if err != nil {
		return Outcome{}, errors.Wrap(err, "breaker space headroom")
	}
	o.Value = float64(n)
	return o, nil
}

// draw looks up the row of ctx and draws one of its outcomes.
func draw(rng discrete.RandomStream, t *table.Table, ctx []string) (Outcome, error) {
	weights, labels, err := t.Find(ctx)
	if err != nil {
		return Outcome{}, err
	}
	i := discrete.Draw(rng, weights)
	return Outcome{Label: labels[i], Index: i}, nil
}

// translationContext resolves only the buckets the label's translation needs.
func translationContext(b *Building, label string) (TranslationContext, error) {
	var (
		tc  TranslationContext
		err error
	)
	switch label {
	case CapacityBelow100:
		// a building without heating is not electrically heated
		if f := canonical(b.HeatingFuel); f == "" || f == None {
			tc.PrimaryFuel = NonElectricity
			break
		}
		tc.PrimaryFuel, err = FuelBucket(b.HeatingFuel)
	case CapacityAbove200:
		tc.FloorArea, err = FloorAreaBucket(b.FloorArea)
	}
	return tc, err
}
