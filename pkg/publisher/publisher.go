package publisher

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/truverse/taskctl/pkg/addressfile"
	"github.com/truverse/taskctl/pkg/merkle"
	"github.com/truverse/taskctl/pkg/task"
)

// Publish uploads a compiled task, registers it with the filesystem registry
// and deploys a task contract for it. Every step waits for the previous one;
// the first failure ends the run and nothing already sent on chain is undone.
func Publish(ctx context.Context, deps Deps, req Request) (*Result, error) {
	if err := validate(deps, req); err != nil {
		return nil, err
	}
	econ, err := req.Economics.parse()
	if err != nil {
		return nil, errors.Wrap(err, "invalid economics")
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	logger := log.Ctx(ctx).With().Str("task", req.TaskName).Logger()

	logger.Info().Msg("Loading task...")
	artifact, err := task.Load(req.ArtifactDir, req.TaskName)
	if err != nil {
		return nil, err
	}

	logger.Info().Msg("Uploading task to IPFS...")
	upload, err := deps.Store.Add(ctx, req.UploadName, artifact.Code)
	if err != nil {
		return nil, errors.Wrap(err, "uploading task")
	}

	res := &Result{
		Task:     req.TaskName,
		Size:     artifact.Size(),
		Upload:   upload,
		Root:     merkle.Root(artifact.Code),
		CodeRoot: artifact.CodeRoot(),
		Nonce:    uint64(now().UnixMilli()),
	}
	logger.Debug().
		Stringer("cid", upload.CID).
		Uint64("size", res.Size).
		Str("root", res.Root.Hex()).
		Uint64("nonce", res.Nonce).
		Msg("uploaded task")

	logger.Info().Msg("Adding task to filesystem contract...")
	if err := register(ctx, deps, req, res); err != nil {
		return nil, err
	}

	logger.Info().Msg("Deploying...")
	// The address returned with the deployment is only predicted from the
	// sender nonce; the confirmed one comes from WaitDeployed.
	_, deployTx, err := deps.Chain.Deploy(ctx, req.Contract,
		req.Incentive,
		req.Token,
		deps.Registry.Address(),
		[32]byte(res.FileID),
		u256(req.ChallengeWindow),
		econ.minDeposit,
		econ.solverReward,
		econ.verifierTax,
		econ.ownerFee,
	)
	if err != nil {
		return nil, err
	}
	res.DeployTx = txHash(deployTx)

	res.Contract, err = deps.Chain.WaitDeployed(ctx, deployTx)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("address", res.Contract.Hex()).Msg("Contract deployed")

	if err := addressfile.Write(req.AddressFile, res.Contract); err != nil {
		return res, err
	}
	return res, nil
}

// register records the file and its code root, then derives the file id and
// checks it against what the registry stored.
func register(ctx context.Context, deps Deps, req Request, res *Result) error {
	tx, err := deps.Registry.AddIPFSFile(ctx, res.Upload.Path, res.Size, res.Upload.CID.String(), res.Root, res.Nonce)
	if err != nil {
		return errors.Wrap(err, "registering file")
	}
	res.RegisterTx = txHash(tx)
	if _, err := deps.Chain.WaitMined(ctx, tx); err != nil {
		return errors.Wrap(err, "registering file")
	}

	tx, err = deps.Registry.SetCodeRoot(ctx, res.Nonce, res.CodeRoot, req.CodeType, req.VM)
	if err != nil {
		return errors.Wrap(err, "setting code root")
	}
	res.CodeTx = txHash(tx)
	if _, err := deps.Chain.WaitMined(ctx, tx); err != nil {
		return errors.Wrap(err, "setting code root")
	}

	res.FileID, err = deps.Registry.CalculateID(ctx, res.Nonce)
	if err != nil {
		return errors.Wrap(err, "calculating file id")
	}
	if res.FileID == (common.Hash{}) {
		return errors.Wrapf(ErrRegistrationMismatch, "registry returned an empty file id for nonce %d", res.Nonce)
	}

	if !deps.Registry.CanReadRoot() {
		log.Ctx(ctx).Warn().Msg("filesystem contract cannot report file roots, skipping registration check")
		return nil
	}
	stored, err := deps.Registry.Root(ctx, res.FileID)
	if err != nil {
		return errors.Wrap(err, "reading registered file root")
	}
	if stored != res.Root {
		return errors.Wrapf(ErrRegistrationMismatch, "file %s has root %s, uploaded %s", res.FileID.Hex(), stored.Hex(), res.Root.Hex())
	}
	res.Verified = true
	return nil
}

func validate(deps Deps, req Request) error {
	switch {
	case deps.Store == nil:
		return errors.New("publisher: no content store")
	case deps.Registry == nil:
		return errors.New("publisher: no filesystem registry")
	case deps.Chain == nil:
		return errors.New("publisher: no chain client")
	case req.TaskName == "":
		return errors.New("publisher: task name is empty")
	case req.Contract == nil:
		return errors.New("publisher: no task contract artifact")
	case req.AddressFile == "":
		return errors.New("publisher: no address file")
	case req.UploadName == "":
		return errors.New("publisher: no upload name")
	}
	return nil
}
