package submitter

import (
	"github.com/pkg/errors"

	"github.com/truverse/taskctl/pkg/addressfile"
	"github.com/truverse/taskctl/pkg/chain"
	"github.com/truverse/taskctl/pkg/truebit"
)

// NewDeps reads the deployed contract address from addressPath and binds the
// task contract and the TRU token to client.
func NewDeps(client *chain.Client, manifest chain.Manifest, task *chain.Artifact, addressPath, submitMethod string) (Deps, error) {
	addr, err := addressfile.Read(addressPath)
	if err != nil {
		return Deps{}, err
	}
	if task == nil {
		return Deps{}, errors.New("no task contract abi")
	}
	token, err := manifest.Bind(client, chain.Token)
	if err != nil {
		return Deps{}, err
	}
	return Deps{
		Task:      truebit.NewTaskContract(client.Bind(addr, task.ABI), submitMethod),
		Token:     truebit.NewToken(token),
		Confirmer: client,
		Account:   client.From(),
	}, nil
}
