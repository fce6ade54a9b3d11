package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"newsgate/internal/apperr"
	"newsgate/internal/domain"
	"newsgate/internal/nntp"
	"newsgate/internal/nntp/mocks"
)

type CommandLineTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	ctx  context.Context

	syncer  *mocks.MockSyncer
	mapping *mocks.MockMapping
	view    *mocks.MockArticleView

	out *bytes.Buffer
	cli *commandLine
}

func (s *CommandLineTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()

	s.syncer = mocks.NewMockSyncer(s.ctrl)
	s.mapping = mocks.NewMockMapping(s.ctrl)
	s.view = mocks.NewMockArticleView(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	engine := nntp.NewEngine(s.syncer, s.mapping, s.view, nil, "news.example.com", logger)

	s.out = &bytes.Buffer{}
	s.cli = &commandLine{
		backend: nntp.NewBackend(engine),
		syncer:  s.syncer,
		out:     s.out,
	}
}

func (s *CommandLineTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCommandLineTestSuite(t *testing.T) {
	suite.Run(t, new(CommandLineTestSuite))
}

func (s *CommandLineTestSuite) TestGroup() {
	s.syncer.EXPECT().Sync(gomock.Any(), domain.Newsgroup).Return(&domain.SyncStats{}, nil)
	s.mapping.EXPECT().Stats(gomock.Any(), domain.Newsgroup).Return(domain.GroupStats{Count: 3, Low: 1, High: 3}, nil)

	err := s.cli.run(s.ctx, "GROUP", nil)

	s.NoError(err)
	s.Equal("211 3 1 3 blog.singpolyma\n", s.out.String())
}

func (s *CommandLineTestSuite) TestUnknownGroup() {
	s.cli.group = "comp.lang.go"

	err := s.cli.run(s.ctx, "group", nil)

	s.ErrorIs(err, errNoSuchGroup)
	s.Equal("411 no such news group", statusLine(err))
}

func (s *CommandLineTestSuite) TestListGroup() {
	s.syncer.EXPECT().Sync(gomock.Any(), domain.Newsgroup).Return(&domain.SyncStats{}, nil)
	s.mapping.EXPECT().Numbers(gomock.Any(), domain.Newsgroup).Return([]int64{1, 2}, nil)

	err := s.cli.run(s.ctx, "listgroup", nil)

	s.NoError(err)
	s.Equal("211 article numbers follow\n1\n2\n.\n", s.out.String())
}

func (s *CommandLineTestSuite) TestBody() {
	s.syncer.EXPECT().Sync(gomock.Any(), domain.Newsgroup).Return(&domain.SyncStats{}, nil)
	s.view.EXPECT().Articles(gomock.Any(), domain.Newsgroup, domain.Single(1)).Return([]domain.Article{{
		Number:    1,
		MessageID: "<post-7@news.example.com>",
		Date:      time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Body:      "Hi",
	}}, nil)

	err := s.cli.run(s.ctx, "body", []string{"1"})

	s.NoError(err)
	s.Equal("222 1 <post-7@news.example.com>\nHi\n.\n", s.out.String())
}

func (s *CommandLineTestSuite) TestStatMissingArticle() {
	s.syncer.EXPECT().Sync(gomock.Any(), domain.Newsgroup).Return(&domain.SyncStats{}, nil)
	s.mapping.EXPECT().MessageID(gomock.Any(), domain.Newsgroup, int64(5)).
		Return("", fmt.Errorf("article 5: %w", apperr.ErrNotFound))

	err := s.cli.run(s.ctx, "stat", []string{"5"})

	s.ErrorIs(err, apperr.ErrNotFound)
	s.Equal("423 no such article in group", statusLine(err))
}

func (s *CommandLineTestSuite) TestSyntaxErrors() {
	err := s.cli.run(s.ctx, "stat", []string{"five"})
	s.ErrorIs(err, errSyntax)

	err = s.cli.run(s.ctx, "xover", []string{"9-x"})
	s.ErrorIs(err, errSyntax)

	err = s.cli.run(s.ctx, "frobnicate", nil)
	s.ErrorIs(err, errSyntax)
	s.Contains(statusLine(err), "501 ")
}

func (s *CommandLineTestSuite) TestUnsupported() {
	err := s.cli.run(s.ctx, "xpat", []string{"Subject", "1-", "*go*"})
	s.ErrorIs(err, apperr.ErrUnsupported)
	s.Equal("500 command not supported", statusLine(err))

	err = s.cli.run(s.ctx, "newgroups", []string{"2024-03-01T00:00:00Z"})
	s.ErrorIs(err, apperr.ErrUnsupported)
}

func (s *CommandLineTestSuite) TestXGTitle() {
	err := s.cli.run(s.ctx, "xgtitle", nil)

	s.NoError(err)
	s.Equal("282 list of groups and descriptions follows\nblog.singpolyma Singpolyma\n.\n", s.out.String())
}

func (s *CommandLineTestSuite) TestSyncFailure() {
	s.syncer.EXPECT().Sync(gomock.Any(), domain.Newsgroup).
		Return(nil, apperr.NewStorage("select unnumbered posts", errors.New("connection refused")))

	err := s.cli.run(s.ctx, "sync", nil)

	s.ErrorIs(err, apperr.ErrStorageUnavailable)
	s.Equal("503 program fault - command not performed", statusLine(err))
}
