package ast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectStmtDistinctFields(t *testing.T) {
	s := NewSelectStmt()
	defer s.Release()

	s.Fields = append(s.Fields, "Id", "Name", "Id", "Description", "Name")
	assert.Equal(t, []string{"Id", "Name", "Description"}, s.DistinctFields())
	assert.Len(t, s.Fields, 5)
}

func TestSelectStmtValidate(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(s *SelectStmt)
		wantErr string
	}{
		{
			name:    "missing object",
			prepare: func(s *SelectStmt) { s.Fields = append(s.Fields, "Id") },
			wantErr: "sObject name",
		},
		{
			name:    "missing fields",
			prepare: func(s *SelectStmt) { s.Object = "Account" },
			wantErr: "fields for select",
		},
		{
			name: "unbalanced groups",
			prepare: func(s *SelectStmt) {
				s.Object = "Account"
				s.Fields = append(s.Fields, "Id")
				s.Where.StartGroup()
			},
			wantErr: "unbalanced",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelectStmt()
			defer s.Release()
			tt.prepare(s)

			err := s.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidQuery))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSelectStmtValidateOK(t *testing.T) {
	s := NewSelectStmt()
	defer s.Release()
	s.Object = "Account"
	s.Fields = append(s.Fields, "Id")
	assert.NoError(t, s.Validate())
}

func TestSelectStmtFingerprint(t *testing.T) {
	a := NewSelectStmt()
	defer a.Release()
	a.Object = "Account"
	a.Fields = append(a.Fields, "Id", "Name")

	b := NewSelectStmt()
	defer b.Release()
	b.Object = "Account"
	b.Fields = append(b.Fields, "IdName")

	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())

	fp := a.Fingerprint()
	a.Limit.Count = 10
	assert.NotEqual(t, fp, a.Fingerprint())

	fp = a.Fingerprint()
	a.OrderBy = append(a.OrderBy, NewOrderByClause("Name", DirAsc))
	assert.NotEqual(t, fp, a.Fingerprint())
}

func TestSelectStmtKey(t *testing.T) {
	a := NewSelectStmt()
	defer a.Release()
	a.Object = "Acc"
	a.Fields = append(a.Fields, "a\x00", "")

	b := NewSelectStmt()
	defer b.Release()
	b.Object = "Acc"
	b.Fields = append(b.Fields, "a", "\x00")

	assert.NotEqual(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())

	c := NewSelectStmt()
	defer c.Release()
	c.Object = "Acc"
	c.Fields = append(c.Fields, "a\x00", "")
	assert.Equal(t, a.Key(), c.Key())
	assert.Equal(t, a.Fingerprint(), c.Fingerprint())

	a.Where.Append(NewCondition("X", OpEqual, "'y'", OpAnd))
	c.Where.Append(NewCondition("X", OpEqual, "'y'", OpOr))
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestSelectStmtClone(t *testing.T) {
	s := NewSelectStmt()
	s.Object = "Account"
	s.Fields = append(s.Fields, "Id")
	s.Where.StartGroup()
	s.Where.Append(NewCondition("A", OpEqual, "1", OpAnd))
	s.Where.EndGroup()
	s.OrderBy = append(s.OrderBy, NewOrderByClause("Name", DirDesc))
	s.Limit.Count = 5

	clone := s.Clone()
	key := s.Key()
	assert.Equal(t, key, clone.Key())

	s.Release()
	reused := NewSelectStmt()
	defer reused.Release()
	reused.Object = "Contact"
	reused.Where.Append(NewCondition("B", OpEqual, "2", OpOr))

	assert.Equal(t, key, clone.Key())
	assert.Equal(t, "Account", clone.Object)
	assert.Equal(t, "A", clone.Where.Conditions[0].Column)
	assert.Equal(t, "Name DESC", clone.OrderBy[0].String())

	var empty *SelectStmt
	assert.Nil(t, empty.Clone())
}

func TestNewSelectStmtIsEmpty(t *testing.T) {
	s := NewSelectStmt()
	s.Object = "Account"
	s.Fields = append(s.Fields, "Id")
	s.Where.Append(NewCondition("A", OpEqual, "1", OpAnd))
	s.OrderBy = append(s.OrderBy, NewOrderByClause("Id", DirDesc))
	s.Limit.Count = 5
	s.Release()

	fresh := NewSelectStmt()
	defer fresh.Release()
	assert.Empty(t, fresh.Object)
	assert.Empty(t, fresh.Fields)
	assert.Zero(t, fresh.Where.Len())
	assert.Empty(t, fresh.OrderBy)
	assert.True(t, fresh.Limit.IsZero())
}

func TestOrderByClauseString(t *testing.T) {
	o := NewOrderByClause("Name", DirDesc)
	defer o.Release()
	assert.Equal(t, "Name DESC", o.String())
}
