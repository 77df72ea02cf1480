package layout

import "go.uber.org/zap"

// BuildOptions 配置布局构建阶段的依赖。
type BuildOptions struct {
	Logger *zap.Logger
}

func (o BuildOptions) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
