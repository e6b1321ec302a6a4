//go:build unit || !integration

package task

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
)

const codeRoot = "0x8f2c0e6bd3e06d4c3b7bba0c5e0d8ec33d96b3b2b0e9d4a0f3f7f4f6f1b2c3d4"

type TaskSuite struct {
	suite.Suite
	dir string
}

func TestTaskSuite(t *testing.T) {
	suite.Run(t, new(TaskSuite))
}

func (s *TaskSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *TaskSuite) write(name, contents string) {
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, name), []byte(contents), 0o600))
}

func (s *TaskSuite) TestLoad() {
	s.write("reverse.wasm", "\x00asm\x01\x00\x00\x00")
	s.write("reverse.wasm.json", `{"vm":{"code":"`+codeRoot+`","stack":"0x01"},"hash":"0x00"}`)

	artifact, err := Load(s.dir, "reverse")
	s.Require().NoError(err)
	s.Equal("reverse", artifact.Name)
	s.Equal(uint64(8), artifact.Size())
	s.Equal(common.HexToHash(codeRoot), artifact.CodeRoot())
	s.Contains(artifact.Metadata.VM.Extra, "stack")
}

func (s *TaskSuite) TestMissingBinary() {
	_, err := Load(s.dir, "reverse")
	s.Require().Error(err)
	s.Contains(err.Error(), "reverse.wasm")
}

func (s *TaskSuite) TestMissingMetadata() {
	s.write("reverse.wasm", "\x00asm")
	_, err := Load(s.dir, "reverse")
	s.Require().Error(err)
	s.Contains(err.Error(), "reverse.wasm.json")
}

func (s *TaskSuite) TestBadCodeRoot() {
	s.write("reverse.wasm", "\x00asm")
	for _, meta := range []string{
		`{"vm":{}}`,
		`{"hash":"0x00"}`,
		`{"vm":{"code":12}}`,
		`{"vm":{"code":"0x1234"}}`,
		`{"vm":{"code":"nothex"}}`,
		`not json`,
	} {
		s.write("reverse.wasm.json", meta)
		_, err := Load(s.dir, "reverse")
		s.Error(err, meta)
	}
}
