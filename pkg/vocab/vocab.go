// Package vocab holds the manufacturing vocabulary used to populate fixtures.
package vocab

import "math/rand/v2"

// List is an ordered, read-only sequence of vocabulary units.
type List []string

// Pick returns one uniformly chosen entry. The list must not be empty.
func (l List) Pick(rng *rand.Rand) string {
	return l[rng.IntN(len(l))]
}

// Sample returns n distinct entries chosen without replacement.
// n is clamped to the list length; the receiver is not modified.
func (l List) Sample(rng *rand.Rand, n int) []string {
	n = min(max(n, 0), len(l))
	out := make([]string, 0, n)
	for _, i := range rng.Perm(len(l))[:n] {
		out = append(out, l[i])
	}
	return out
}

// Terms is the default manufacturing term list.
var Terms = List{
	"零件", "装配", "工艺卡", "BOM", "刀具", "夹具", "基准", "公差",
	"尺寸链", "工序", "毛坯", "热处理", "机加工", "焊接", "三坐标", "PDM",
	"MES", "工装", "检验", "试制", "批量生产", "数控", "图纸", "CAD",
	"CAPP", "加工中心", "材料牌号", "粗糙度", "表面处理", "库存", "流程卡",
	"工艺路线", "标准件", "外购件", "刀具编号", "工序时间", "编程", "设备",
	"质检", "条码", "批次", "计划", "发料", "领料", "返工", "合格", "不合格",
	"物料编码", "装夹", "定位", "夹具设计", "程序", "刀轨", "切削", "进给",
	"主轴", "夹紧", "验收", "试验", "参数", "调整", "优化", "上线", "下线",
	"ERP", "PLM", "MRP", "工时", "刀具寿命", "换刀", "刀补", "测量",
	"量具", "模具", "冲压", "折弯", "激光切割", "数控铣", "车削", "钻孔",
	"攻丝", "抛光", "去毛刺", "工艺参数", "制造资源", "产能分析", "工艺仿真",
	"夹具定位", "夹紧力", "基准孔", "装配公差", "焊缝", "热变形", "冷却液", "主程序",
	"子程序", "G代码", "M代码", "刀补表", "工序卡片", "检验报告", "质量追溯",
	"条码系统", "RFID", "生产计划", "调度", "在制品", "入库", "出库", "台账",
	"工单", "派工单", "物料清单", "BOP", "ERP接口", "数据采集", "设备状态",
	"维护保养", "故障报警", "工艺标准", "作业指导书", "产品结构", "BOM展开",
	"三维模型", "模型转换", "CAM编程", "刀轨仿真", "碰撞检测", "夹具校核",
	"制造偏差", "工艺模板", "工艺基准", "尺寸公差", "几何公差", "形位公差",
	"统计过程控制", "SPC", "质量体系", "ISO9001", "计量器具", "生产节拍",
	"节拍时间", "换线", "首件检验", "过程检验", "终检", "FMEA", "PPAP",
	"工艺改进", "降本增效", "制造执行", "生产可视化", "数据采集终端", "电子看板",
	"设备联网", "智能制造", "数字化工厂", "数字孪生", "虚拟仿真", "物联网",
	"MES集成", "生产追踪", "质量分析", "报工系统", "能耗监控", "设备稼动率",
}

// Connectors are appended to a unit during text generation.
var Connectors = List{"，", "。", "；", "：", "并且", "同时", "因此", "例如", "包括", "与", "或", "并"}

// Chars are the single-character units used in place of a full term.
var Chars = splitChars("制造业测试工序刀具夹具工装材料表面加工质量")

func splitChars(s string) List {
	var l List
	for _, r := range s {
		l = append(l, string(r))
	}
	return l
}
