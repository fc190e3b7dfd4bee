package logging

import (
	"go.uber.org/zap"
)

// Init 初始化全局 zap Logger，业务代码统一通过 zap.L() 使用
func Init(debug bool) error {
	var (
		logger *zap.Logger
		err    error
	)
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}
