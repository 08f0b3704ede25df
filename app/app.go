package app

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	evmClient "github.com/sygmaprotocol/sygma-core/chains/evm/client"
	"github.com/sygmaprotocol/sygma-core/observability"
	"github.com/sygmaprotocol/sygma-core/store/lvldb"

	"github.com/bundleswap/escrow-engine/api"
	"github.com/bundleswap/escrow-engine/api/handlers"
	"github.com/bundleswap/escrow-engine/assets"
	"github.com/bundleswap/escrow-engine/assets/memory"
	"github.com/bundleswap/escrow-engine/cache"
	"github.com/bundleswap/escrow-engine/chains/evm"
	"github.com/bundleswap/escrow-engine/config"
	"github.com/bundleswap/escrow-engine/escrow"
	"github.com/bundleswap/escrow-engine/health"
	"github.com/bundleswap/escrow-engine/metrics"
	"github.com/bundleswap/escrow-engine/store"
)

var Version string

// assetVerifiers routes approval preflights to the checker of the
// chain an asset is configured on.
type assetVerifiers struct {
	byAsset map[common.Address]*evm.ApprovalChecker
}

func (v *assetVerifiers) VerifyApproval(asset common.Address, owner common.Address, idOrAmount *big.Int) error {
	checker, ok := v.byAsset[asset]
	if !ok {
		return fmt.Errorf("no chain configured for asset %s", asset.Hex())
	}
	return checker.VerifyApproval(asset, owner, idOrAmount)
}

func Run() error {
	var err error

	configFlag := viper.GetString(config.ConfigFlagName)

	var configuration *config.Config
	if strings.ToLower(configFlag) == "env" {
		configuration, err = config.GetConfigFromENV(nil)
		panicOnError(err)
	} else {
		configuration, err = config.GetConfigFromFile(configFlag, nil)
		panicOnError(err)
	}

	logLevel, err := zerolog.ParseLevel(configuration.EngineConfig.LogLevel)
	panicOnError(err)
	observability.ConfigureLogger(logLevel, os.Stdout)

	log.Info().Msg("Successfully loaded configuration")

	db, err := lvldb.NewLvlDB(viper.GetString(config.StoreFlagName))
	panicOnError(err)
	escrowStore := store.NewEscrowStore(db)

	custodian := common.HexToAddress(configuration.EngineConfig.CustodianAddress)
	ledger := memory.NewLedger()

	verifiers := &assetVerifiers{byAsset: make(map[common.Address]*evm.ApprovalChecker)}
	for _, chainConfig := range configuration.ChainConfigs {
		switch chainConfig["type"] {
		case "evm":
			{
				chainCfg, err := evm.NewEVMConfig(chainConfig)
				panicOnError(err)

				log.Info().Uint64("chain", *chainCfg.GeneralChainConfig.Id).Msgf("Registering EVM assets")

				for symbol, asset := range chainCfg.Assets {
					err = ledger.RegisterAsset(asset.Address, asset.Kind)
					panicOnError(err)
					log.Info().Str("symbol", symbol).Str("asset", asset.Address.Hex()).Msgf("Registered %s asset", asset.Kind)
				}

				if chainCfg.GeneralChainConfig.Endpoint == "" {
					continue
				}
				client, err := evmClient.NewEVMClient(chainCfg.GeneralChainConfig.Endpoint, nil)
				panicOnError(err)

				checker := evm.NewApprovalChecker(evm.NewClientContractFactory(client), custodian, chainCfg)
				for _, asset := range chainCfg.Assets {
					verifiers.byAsset[asset.Address] = checker
				}
			}
		default:
			panic(fmt.Errorf("type '%s' not recognized", chainConfig["type"]))
		}
	}

	adapter := assets.NewAdapter(custodian, ledger, ledger.Operator(custodian))
	engine := escrow.NewEngine(adapter, ledger, escrowStore)

	snapshot, err := escrowStore.Snapshot()
	panicOnError(err)
	if snapshot != nil {
		panicOnError(engine.Restore(snapshot))
		log.Info().Msgf("Restored %d bundles and %d offers from store", len(snapshot.Bundles), len(snapshot.Offers))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mp, err := observability.InitMetricProvider(context.Background(), configuration.EngineConfig.OpenTelemetryCollectorURL)
	panicOnError(err)
	defer func() {
		if err := mp.Shutdown(context.Background()); err != nil {
			log.Error().Msgf("Error shutting down meter provider: %v", err)
		}
	}()

	escrowMetrics, err := metrics.NewEscrowMetrics(ctx, mp.Meter("escrow-metric-provider"), configuration.EngineConfig.Env, configuration.EngineConfig.Id, Version, engine)
	panicOnError(err)

	receipts := cache.NewReceiptCache(ctx)

	var verifier handlers.ApprovalVerifier
	if len(verifiers.byAsset) > 0 {
		verifier = verifiers
	}

	bundlesHandler := handlers.NewBundlesHandler(engine, verifier, escrowMetrics)
	offersHandler := handlers.NewOffersHandler(engine, verifier, escrowMetrics)
	swapsHandler := handlers.NewSwapsHandler(engine, receipts, escrowMetrics)

	go health.StartHealthEndpoint(ctx, configuration.EngineConfig.HealthPort)
	go api.Serve(ctx, configuration.EngineConfig.ApiAddr, bundlesHandler, offersHandler, swapsHandler)

	sysErr := make(chan os.Signal, 1)
	signal.Notify(sysErr,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT)

	log.Info().Msgf("Started escrow engine with custodian %s. Version: v%s", custodian.Hex(), Version)

	sig := <-sysErr
	log.Info().Msgf("terminating got ` [%v] signal", sig)
	return nil
}

func panicOnError(err error) {
	if err != nil {
		panic(err)
	}
}
