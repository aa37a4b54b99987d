package decorators_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/quest-dash/internal/decorators"
	"github.com/KirkDiggler/quest-dash/internal/errors"
)

type ListTestSuite struct {
	suite.Suite
	catalog *decorators.Catalog
	list    *decorators.List
}

func TestListSuite(t *testing.T) {
	suite.Run(t, new(ListTestSuite))
}

func (s *ListTestSuite) SetupTest() {
	s.catalog = decorators.DefaultCatalog()
	s.list = decorators.NewList(s.catalog)
}

func (s *ListTestSuite) TestAddNumericParsesInteger() {
	d, err := s.list.Add(decorators.TagLevelReq, "5")
	s.Require().NoError(err)

	s.Equal(decorators.TagLevelReq, d.Tag)
	s.Equal(5, d.Value())
	s.Equal(1, s.list.Len())
}

func (s *ListTestSuite) TestAddRejectsInvalidValues() {
	testCases := []struct {
		name string
		tag  decorators.Tag
		raw  string
	}{
		{name: "non numeric level", tag: decorators.TagLevelReq, raw: "abc"},
		{name: "non numeric money", tag: decorators.TagMoneyReward, raw: "12coins"},
		{name: "empty npc", tag: decorators.TagNPCReq, raw: "   "},
		{name: "empty item selection", tag: decorators.TagItemReward, raw: ""},
		{name: "item outside catalog", tag: decorators.TagItemReward, raw: "Banana"},
		{name: "unknown tag", tag: decorators.Tag("xp_boost"), raw: "3"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.list.Add(tc.tag, tc.raw)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Equal(0, s.list.Len())
		})
	}
}

func (s *ListTestSuite) TestAddKeepsInsertionOrder() {
	_, err := s.list.Add(decorators.TagNPCReq, "Village elder")
	s.Require().NoError(err)
	_, err = s.list.Add(decorators.TagItemReward, "Sword")
	s.Require().NoError(err)
	_, err = s.list.Add(decorators.TagMoneyReward, "100")
	s.Require().NoError(err)

	items := s.list.Items()
	s.Require().Len(items, 3)
	s.Equal("Village elder", items[0].Value())
	s.Equal("Sword", items[1].Value())
	s.Equal(100, items[2].Value())
}

func (s *ListTestSuite) TestRemoveAt() {
	_, _ = s.list.Add(decorators.TagLevelReq, "2")
	_, _ = s.list.Add(decorators.TagMoneyReward, "50")
	_, _ = s.list.Add(decorators.TagItemReward, "Potion")

	s.list.RemoveAt(1)

	items := s.list.Items()
	s.Require().Len(items, 2)
	s.Equal(decorators.TagLevelReq, items[0].Tag)
	s.Equal(decorators.TagItemReward, items[1].Tag)
}

func (s *ListTestSuite) TestRemoveAtOutOfRangeIsNoop() {
	empty := decorators.NewList(s.catalog)
	empty.RemoveAt(0)
	s.Equal("[]", empty.Encode())

	_, _ = s.list.Add(decorators.TagLevelReq, "2")
	before := s.list.Encode()
	s.list.RemoveAt(-1)
	s.list.RemoveAt(1)
	s.list.RemoveAt(42)
	s.Equal(before, s.list.Encode())
}

func (s *ListTestSuite) TestEncode() {
	_, _ = s.list.Add(decorators.TagLevelReq, "5")
	_, _ = s.list.Add(decorators.TagItemReward, "Sword")

	s.JSONEq(`[{"type":"level_req","value":5},{"type":"item_reward","value":"Sword"}]`, s.list.Encode())
	s.Equal("[]", decorators.NewList(s.catalog).Encode())
}

func (s *ListTestSuite) TestRoundTripIsStable() {
	_, _ = s.list.Add(decorators.TagLevelReq, "3")
	_, _ = s.list.Add(decorators.TagNPCReq, "Blacksmith \"Old Tom\"")
	_, _ = s.list.Add(decorators.TagMoneyReward, "-10")
	_, _ = s.list.Add(decorators.TagItemReward, "Trophy")

	encoded := s.list.Encode()
	s.Equal(encoded, decorators.Decode(encoded, s.catalog).Encode())
}

func (s *ListTestSuite) TestDecodeIsLenient() {
	for _, input := range []string{"", "   ", "null", "not valid data", `{"type":"level_req"}`, "[1, 2"} {
		l := decorators.Decode(input, s.catalog)
		s.Equal(0, l.Len(), "input %q", input)
	}
}

func (s *ListTestSuite) TestDecodeDropsBadEntries() {
	l := decorators.Decode(`[
		{"type":"level_req","value":"7"},
		{"type":"teleport","value":1},
		{"type":"money_reward","value":"lots"},
		{"type":"item_reward","value":"Banana"},
		{"type":"npc_req","value":""}
	]`, s.catalog)

	items := l.Items()
	s.Require().Len(items, 2)
	s.Equal(7, items[0].Value())
	s.Equal("Banana", items[1].Value())
}
